package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
)

// Chat is a persisted conversation container owned by exactly one user.
// Deletion is a soft flag; the rows stay referenced by their messages.
type Chat struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Title     string
	CreatedAt time.Time
	UpdatedAt *time.Time
	IsActive  bool
}

// ChatMessage is one appended turn half; messages are append-only, ordered
// by CreatedAt.
type ChatMessage struct {
	Id        uuid.UUID
	ChatId    uuid.UUID
	Role      string
	Content   string
	CreatedAt time.Time
}
