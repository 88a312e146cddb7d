package dto

// AssistantRequest carries a customer message for the styling assistant.
type AssistantRequest struct {
	Message string `json:"message"`
}

// AssistantResponse is the assistant's reply.
type AssistantResponse struct {
	Reply    string `json:"reply"`
	Positive bool   `json:"positive"`
}
