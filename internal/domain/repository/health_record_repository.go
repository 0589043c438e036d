package repository

import (
	"context"

	"healthguard-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HealthRecordRepository interface {
	Create(ctx context.Context, db *gorm.DB, record *entity.HealthRecord) error
	// FindRecentByUserID returns up to limit records, most recent first.
	FindRecentByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]entity.HealthRecord, error)
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit, offset int) ([]entity.HealthRecord, error)
	CountByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
	FindLatestByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.HealthRecord, error)
}
