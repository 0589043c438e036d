package converter

import (
	"healthguard-api/internal/delivery/dto"
	"healthguard-api/internal/domain/entity"
)

// ChatMessageToResponse converts a ChatMessage entity to its DTO
func ChatMessageToResponse(message *entity.ChatMessage) *dto.ChatMessageResponse {
	if message == nil {
		return nil
	}

	return &dto.ChatMessageResponse{
		ID:        message.ID,
		Role:      string(message.Role),
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	}
}

// ChatMessagesToResponses converts a transcript slice, preserving order
func ChatMessagesToResponses(messages []entity.ChatMessage) []dto.ChatMessageResponse {
	responses := make([]dto.ChatMessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, *ChatMessageToResponse(&messages[i]))
	}
	return responses
}
