package repository

import (
	"context"

	"healthguard-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DiseaseImpactRepository interface {
	CreateBatch(ctx context.Context, db *gorm.DB, analyses []entity.DiseaseImpactAnalysis) error
	// FindByUserID returns analyses newest first so the latest generation
	// supersedes older ones for display.
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]entity.DiseaseImpactAnalysis, error)
}
