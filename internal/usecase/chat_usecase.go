package usecase

import (
	"context"

	"healthguard-api/internal/converter"
	"healthguard-api/internal/delivery/dto"
	"healthguard-api/internal/domain/entity"
	"healthguard-api/internal/domain/repository"
	"healthguard-api/internal/engine/chat"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ChatUsecase interface {
	SendMessage(ctx context.Context, userID uuid.UUID, req *dto.SendChatMessageRequest) (*dto.ChatReplyResponse, error)
	GetMessages(ctx context.Context, userID uuid.UUID) ([]dto.ChatMessageResponse, error)
}

type chatUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	messageRepo repository.ChatMessageRepository
	userRepo    repository.UserRepository
}

func NewChatUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	messageRepo repository.ChatMessageRepository,
	userRepo repository.UserRepository,
) ChatUsecase {
	return &chatUsecase{
		db:          db,
		log:         log,
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// SendMessage stores the user message and the generated reply in one
// transaction, so the transcript never shows a question without its answer.
func (u *chatUsecase) SendMessage(ctx context.Context, userID uuid.UUID, req *dto.SendChatMessageRequest) (*dto.ChatReplyResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	reply := chat.Respond(req.Message, user.FullName)

	userMessage := &entity.ChatMessage{
		UserID:  userID,
		Role:    entity.ChatRoleUser,
		Content: req.Message,
	}
	assistantMessage := &entity.ChatMessage{
		UserID:  userID,
		Role:    entity.ChatRoleAssistant,
		Content: reply,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.messageRepo.Create(ctx, tx, userMessage); err != nil {
		u.log.Warnf("Failed to create chat message: %+v", err)
		return nil, err
	}

	if err := u.messageRepo.Create(ctx, tx, assistantMessage); err != nil {
		u.log.Warnf("Failed to create chat reply: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.ChatReplyResponse{
		UserMessage: *converter.ChatMessageToResponse(userMessage),
		Reply:       *converter.ChatMessageToResponse(assistantMessage),
	}, nil
}

func (u *chatUsecase) GetMessages(ctx context.Context, userID uuid.UUID) ([]dto.ChatMessageResponse, error) {
	messages, err := u.messageRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to list chat messages: %+v", err)
		return nil, err
	}

	return converter.ChatMessagesToResponses(messages), nil
}
