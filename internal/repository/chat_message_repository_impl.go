package repository

import (
	"context"

	"healthguard-api/internal/domain/entity"
	domainRepo "healthguard-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type chatMessageRepository struct{}

func NewChatMessageRepository() domainRepo.ChatMessageRepository {
	return &chatMessageRepository{}
}

func (r *chatMessageRepository) Create(ctx context.Context, db *gorm.DB, message *entity.ChatMessage) error {
	return db.WithContext(ctx).Create(message).Error
}

func (r *chatMessageRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.ChatMessage, error) {
	var messages []entity.ChatMessage
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
