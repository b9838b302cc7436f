package dto

import (
	"time"

	"github.com/google/uuid"
)

// GetResponseRequest is the chat endpoint body. The boolean hints are
// computed client-side and treated as advisory signals only.
type GetResponseRequest struct {
	Prompt                  string     `json:"prompt" validate:"required"`
	ChatId                  *uuid.UUID `json:"chat_id,omitempty"`
	IsDirectDocumentRequest bool       `json:"isDirectDocumentRequest"`
	ContainsDocumentType    bool       `json:"containsDocumentType"`
	ContainsDocumentWord    bool       `json:"containsDocumentWord"`
	ContainsInterrogative   bool       `json:"containsInterrogative"`
	StartsWithInterrogative bool       `json:"startsWithInterrogative"`
	RequestedDocType        string     `json:"requestedDocType,omitempty"`
}

type GetResponseResponse struct {
	Response            string   `json:"response"`
	Images              []string `json:"images,omitempty"`
	ShowFormButton      bool     `json:"showFormButton,omitempty"`
	FormType            string   `json:"formType,omitempty"`
	SuggestForm         bool     `json:"suggestForm,omitempty"`
	SuggestAllDocuments bool     `json:"suggestAllDocuments,omitempty"`
	SuggestAuth         bool     `json:"suggestAuth,omitempty"`
	DocumentType        string   `json:"documentType,omitempty"`

	// AdminAuthenticated tells the controller to flip the session flag; it
	// is never serialized to the client.
	AdminAuthenticated bool `json:"-"`
}

type CreateChatRequest struct {
	Title string `json:"title"`
}

type CreateChatResponse struct {
	Id uuid.UUID `json:"id"`
}

type ChatListItem struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type ChatHistoryItem struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type DeleteChatRequest struct {
	ChatId uuid.UUID `json:"chat_id" validate:"required"`
}
