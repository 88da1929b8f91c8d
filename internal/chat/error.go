package chat

import "errors"

var (
	ErrInvalidMessages = errors.New("messages must be a non-empty array")
	ErrNotConfigured   = errors.New("AI service not configured")
	ErrRateLimited     = errors.New("AI service is currently busy")
	ErrPaymentRequired = errors.New("AI service quota exhausted")
	ErrNoResponse      = errors.New("failed to generate response")
)
