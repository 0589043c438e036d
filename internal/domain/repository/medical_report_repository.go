package repository

import (
	"context"

	"healthguard-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalReportRepository interface {
	Create(ctx context.Context, db *gorm.DB, report *entity.MedicalReport) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit, offset int) ([]entity.MedicalReport, error)
	CountByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
}
