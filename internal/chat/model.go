package chat

// Message is a single turn in the conversation sent by the client.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Navigation is a UI action surfaced alongside the assistant's reply.
// Action is either "navigate" (with Page set) or "scroll" (with Section set).
type Navigation struct {
	Action  string `json:"action"`
	Page    string `json:"page,omitempty"`
	Section string `json:"section,omitempty"`
	Success bool   `json:"success"`
}

// Reply is the assistant's final answer for one request.
type Reply struct {
	Message    string      `json:"message"`
	Navigation *Navigation `json:"navigation,omitempty"`
}
