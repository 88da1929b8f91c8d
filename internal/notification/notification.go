package notification

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

// ConfirmationItem is a line-item snapshot for the confirmation email,
// decoupled from the order package so callers map into it.
type ConfirmationItem struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"price"`
	TotalPrice float64 `json:"total"`
}

// Confirmation is the payload for an order confirmation email.
type Confirmation struct {
	CustomerName  string             `json:"customerName"`
	CustomerEmail string             `json:"customerEmail"`
	CustomerPhone string             `json:"customerPhone"`
	OrderNumber   string             `json:"orderId"`
	TrackingID    string             `json:"trackingId"`
	Items         []ConfirmationItem `json:"items"`
	Total         float64            `json:"total"`
	Address       string             `json:"address"`
	DeliveryTime  string             `json:"deliveryTime"`
}

// Notifier sends best-effort order notifications. Callers log failures and
// continue; a lost email never fails the order.
type Notifier interface {
	SendOrderConfirmation(ctx context.Context, c Confirmation) error
}

type webhookNotifier struct {
	url        string
	httpClient *http.Client
}

// NewWebhookNotifier posts confirmations to a mail webhook. An empty URL
// yields a notifier that drops everything, for environments without mail.
func NewWebhookNotifier(url string) Notifier {
	if url == "" {
		logger.L().Warn("mail webhook URL is empty, order confirmations disabled")
	}
	return &webhookNotifier{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (n *webhookNotifier) SendOrderConfirmation(ctx context.Context, c Confirmation) error {
	if n.url == "" {
		return nil
	}

	body, err := json.Marshal(c)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		logger.FromCtx(ctx).Warn("mail webhook returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", respBody),
		)
		return fmt.Errorf("mail webhook status %d", resp.StatusCode)
	}

	return nil
}
