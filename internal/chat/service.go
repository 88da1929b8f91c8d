package chat

import (
	"context"

	"agriconnect-be/internal/logger"
	"agriconnect-be/internal/metrics"
	"agriconnect-be/internal/order"
	"agriconnect-be/internal/product"
	"agriconnect-be/internal/tracing"

	"go.uber.org/zap"
)

// maxIterations bounds the tool loop so a misbehaving model cannot spin
// forever between function calls.
const maxIterations = 5

// UserCounter exposes the user table size to the count_records tool.
type UserCounter interface {
	Count(ctx context.Context) (int64, error)
}

type Service interface {
	// Chat runs the conversation through the model, executing any tool
	// calls, and returns the final reply. Without a configured model it
	// answers from the canned pool.
	Chat(ctx context.Context, messages []Message) (*Reply, error)
}

type service struct {
	model    Model
	products product.Repository
	orders   order.Repository
	users    UserCounter
}

// NewService builds the chat service. model may be nil, which puts the
// service in canned-response mode.
func NewService(model Model, products product.Repository, orders order.Repository, users UserCounter) Service {
	return &service{
		model:    model,
		products: products,
		orders:   orders,
		users:    users,
	}
}

func (s *service) Chat(ctx context.Context, messages []Message) (*Reply, error) {
	ctx, span := tracing.AddSpan(ctx, "chat.Chat")
	defer span.End()

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.Int("messages", len(messages)),
	)

	if len(messages) == 0 {
		return nil, ErrInvalidMessages
	}

	metrics.ChatRequests.Inc()

	if s.model == nil {
		log.Info("no model configured, serving canned response")
		return &Reply{Message: CannedResponse()}, nil
	}

	history := buildHistory(messages)

	var finalResponse string

	// 1. Run the conversation, feeding tool results back to the model
	//    until it produces plain text.
	for iteration := 0; iteration < maxIterations; iteration++ {
		content, err := s.model.GenerateContent(ctx, history, assistantTools())
		if err != nil {
			log.Error("model call failed", zap.Int("iteration", iteration), zap.Error(err))
			return nil, err
		}

		history = append(history, Content{Role: "model", Parts: content.Parts})

		var calls []*FunctionCall
		for _, part := range content.Parts {
			if part.FunctionCall != nil {
				calls = append(calls, part.FunctionCall)
			}
		}

		if len(calls) == 0 {
			for _, part := range content.Parts {
				finalResponse += part.Text
			}
			break
		}

		// 2. Execute every requested tool and send all results back in
		//    a single user turn.
		var responses []Part
		for _, call := range calls {
			log.Info("executing tool", zap.String("tool", call.Name))
			metrics.ChatToolCalls.Inc()

			result := s.executeTool(ctx, call)
			responses = append(responses, Part{
				FunctionResponse: &FunctionResponse{
					Name:     call.Name,
					Response: result,
				},
			})
		}
		history = append(history, Content{Role: "user", Parts: responses})
	}

	if finalResponse == "" {
		log.Error("model produced no final text")
		return nil, ErrNoResponse
	}

	// 3. Surface the first navigation action produced along the way.
	return &Reply{
		Message:    finalResponse,
		Navigation: firstNavigation(history),
	}, nil
}

// buildHistory prepends the system context to the client conversation.
// Gemini has no system role, so the context rides as a primer exchange.
func buildHistory(messages []Message) []Content {
	history := make([]Content, 0, len(messages)+2)
	history = append(history,
		Content{Role: "user", Parts: []Part{{Text: systemPrompt}}},
		Content{Role: "model", Parts: []Part{{Text: systemAck}}},
	)
	for _, msg := range messages {
		role := "user"
		if msg.Role == "assistant" {
			role = "model"
		}
		history = append(history, Content{Role: role, Parts: []Part{{Text: msg.Content}}})
	}
	return history
}

func (s *service) executeTool(ctx context.Context, call *FunctionCall) map[string]interface{} {
	ctx, span := tracing.AddSpan(ctx, "chat.executeTool."+call.Name)
	defer span.End()

	switch call.Name {
	case "query_products":
		return s.queryProducts(ctx, call.Args)
	case "query_orders":
		return s.queryOrders(ctx, call.Args)
	case "count_records":
		return s.countRecords(ctx, call.Args)
	case "navigate_to_page":
		page, ok := call.Args["page"].(string)
		if !ok || page == "" {
			return map[string]interface{}{"error": "Page parameter is required"}
		}
		return map[string]interface{}{"action": "navigate", "page": page, "success": true}
	case "scroll_to_section":
		section, ok := call.Args["section"].(string)
		if !ok || section == "" {
			return map[string]interface{}{"error": "Section parameter is required"}
		}
		return map[string]interface{}{"action": "scroll", "section": section, "success": true}
	default:
		return map[string]interface{}{"error": "Unknown function"}
	}
}

func (s *service) queryProducts(ctx context.Context, args map[string]interface{}) map[string]interface{} {
	opts := product.SearchOptions{}
	if filters, ok := args["filters"].(map[string]interface{}); ok {
		if name, ok := filters["name"].(string); ok {
			opts.Name = name
		}
		if category, ok := filters["category"].(string); ok {
			opts.Category = category
		}
	}
	if limit, ok := args["limit"].(float64); ok {
		opts.Limit = int(limit)
	}

	products, err := s.products.Search(ctx, opts)
	if err != nil {
		return map[string]interface{}{"error": "Failed to query products", "details": err.Error()}
	}
	return map[string]interface{}{"products": products, "count": len(products)}
}

func (s *service) queryOrders(ctx context.Context, args map[string]interface{}) map[string]interface{} {
	var customerID string
	var status order.Status
	if v, ok := args["customer_id"].(string); ok {
		customerID = v
	}
	if v, ok := args["status"].(string); ok {
		status = order.Status(v)
	}

	orders, err := s.orders.Search(ctx, customerID, status, 10)
	if err != nil {
		return map[string]interface{}{"error": "Failed to query orders", "details": err.Error()}
	}
	return map[string]interface{}{"orders": orders, "count": len(orders)}
}

func (s *service) countRecords(ctx context.Context, args map[string]interface{}) map[string]interface{} {
	table, ok := args["table"].(string)
	if !ok || table == "" {
		return map[string]interface{}{"error": "Table parameter is required"}
	}

	var count int64
	var err error
	switch table {
	case "products":
		count, err = s.products.Count(ctx)
	case "orders":
		count, err = s.orders.Count(ctx)
	case "users":
		count, err = s.users.Count(ctx)
	default:
		return map[string]interface{}{"error": "Unknown table"}
	}
	if err != nil {
		return map[string]interface{}{"error": "Failed to count " + table, "details": err.Error()}
	}
	return map[string]interface{}{"table": table, "count": count}
}

// firstNavigation scans the conversation for the first navigation or
// scroll action performed by a tool.
func firstNavigation(history []Content) *Navigation {
	for _, msg := range history {
		if msg.Role != "user" {
			continue
		}
		for _, part := range msg.Parts {
			if part.FunctionResponse == nil {
				continue
			}
			action, ok := part.FunctionResponse.Response["action"].(string)
			if !ok {
				continue
			}
			nav := &Navigation{Action: action, Success: true}
			if page, ok := part.FunctionResponse.Response["page"].(string); ok {
				nav.Page = page
			}
			if section, ok := part.FunctionResponse.Response["section"].(string); ok {
				nav.Section = section
			}
			return nav
		}
	}
	return nil
}
