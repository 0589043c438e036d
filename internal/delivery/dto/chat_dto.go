package dto

import (
	"time"

	"github.com/google/uuid"
)

// SendChatMessageRequest represents a user chat message
type SendChatMessageRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

// ChatMessageResponse represents one transcript entry
type ChatMessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatReplyResponse pairs the stored user message with the assistant reply
type ChatReplyResponse struct {
	UserMessage ChatMessageResponse `json:"user_message"`
	Reply       ChatMessageResponse `json:"reply"`
}
