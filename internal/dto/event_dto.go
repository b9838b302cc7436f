package dto

import "github.com/google/uuid"

const (
	AnalyticsEventConversation    = "conversation"
	AnalyticsEventWebsiteVisit    = "website_visit"
	AnalyticsEventDocumentRequest = "document_request"
)

// AnalyticsEventMessage is the payload published on the analytics topic.
// Counters and logs are applied asynchronously so a slow database write
// never delays the citizen-facing reply.
type AnalyticsEventMessage struct {
	Kind         string     `json:"kind"`
	UserInput    string     `json:"user_input,omitempty"`
	AiResponse   string     `json:"ai_response,omitempty"`
	UserId       *uuid.UUID `json:"user_id,omitempty"`
	DocumentType string     `json:"document_type,omitempty"`
}
