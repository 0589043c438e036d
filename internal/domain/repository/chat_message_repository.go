package repository

import (
	"context"

	"healthguard-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, db *gorm.DB, message *entity.ChatMessage) error
	// FindByUserID returns the transcript in creation order.
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.ChatMessage, error)
}
