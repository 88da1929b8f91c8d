package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"agriconnect-be/internal/logger"

	"go.uber.org/zap"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	geminiModel   = "gemini-2.0-flash-exp"
)

// Content is one turn of a Gemini conversation. Role is "user" or "model".
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// Part carries exactly one of its fields.
type Part struct {
	Text             string            `json:"text,omitempty"`
	FunctionCall     *FunctionCall     `json:"functionCall,omitempty"`
	FunctionResponse *FunctionResponse `json:"functionResponse,omitempty"`
}

type FunctionCall struct {
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"args,omitempty"`
}

type FunctionResponse struct {
	Name     string                 `json:"name"`
	Response map[string]interface{} `json:"response"`
}

type FunctionDeclaration struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
}

type Tool struct {
	FunctionDeclarations []FunctionDeclaration `json:"function_declarations"`
}

type generateContentRequest struct {
	Contents         []Content        `json:"contents"`
	Tools            []Tool           `json:"tools,omitempty"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content Content `json:"content"`
	} `json:"candidates"`
}

// Model is the generative backend the chat service talks to.
type Model interface {
	GenerateContent(ctx context.Context, contents []Content, tools []Tool) (*Content, error)
}

type geminiClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiClient(apiKey string) Model {
	if apiKey == "" {
		logger.L().Warn("Gemini API key is empty, chat requests will fail until one is set")
	}
	return &geminiClient{
		apiKey:  apiKey,
		baseURL: geminiBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (g *geminiClient) GenerateContent(ctx context.Context, contents []Content, tools []Tool) (*Content, error) {
	log := logger.FromCtx(ctx).With(zap.String("layer", "gemini_client"))

	if g.apiKey == "" {
		return nil, ErrNotConfigured
	}

	body := generateContentRequest{
		Contents: contents,
		Tools:    tools,
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 2048,
		},
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error("Failed to marshal Gemini request", zap.Error(err))
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, geminiModel, g.apiKey)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return nil, err
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("Gemini request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read gemini response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		log.Warn("Gemini rate limited", zap.ByteString("response", bodyBytes))
		return nil, ErrRateLimited
	case http.StatusPaymentRequired:
		log.Warn("Gemini quota exhausted", zap.ByteString("response", bodyBytes))
		return nil, ErrPaymentRequired
	default:
		log.Error("Gemini returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("gemini error: %s", string(bodyBytes))
	}

	var res generateContentResponse
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("Failed decoding Gemini response", zap.Error(err))
		return nil, err
	}
	if len(res.Candidates) == 0 {
		return nil, ErrNoResponse
	}

	return &res.Candidates[0].Content, nil
}
