package repository

import (
	"context"
	"time"

	"healthguard-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DailyHealthLogRepository interface {
	// Upsert inserts the log or, when a row for (user_id, log_date) exists,
	// overwrites its metric fields.
	Upsert(ctx context.Context, db *gorm.DB, log *entity.DailyHealthLog) error
	// FindRecentByUserID returns up to limit logs ordered by log_date ascending,
	// ending at the most recent date.
	FindRecentByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]entity.DailyHealthLog, error)
	FindByUserIDInRange(ctx context.Context, db *gorm.DB, userID uuid.UUID, from, to time.Time) ([]entity.DailyHealthLog, error)
	CountByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
}
