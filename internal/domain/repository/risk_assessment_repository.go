package repository

import (
	"context"

	"healthguard-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RiskAssessmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, assessment *entity.RiskAssessment) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]entity.RiskAssessment, error)
	FindLatestByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.RiskAssessment, error)
}
