package repository

import (
	"context"

	"healthguard-api/internal/domain/entity"
	domainRepo "healthguard-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type diseaseImpactRepository struct{}

func NewDiseaseImpactRepository() domainRepo.DiseaseImpactRepository {
	return &diseaseImpactRepository{}
}

func (r *diseaseImpactRepository) CreateBatch(ctx context.Context, db *gorm.DB, analyses []entity.DiseaseImpactAnalysis) error {
	return db.WithContext(ctx).Create(&analyses).Error
}

func (r *diseaseImpactRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]entity.DiseaseImpactAnalysis, error) {
	var analyses []entity.DiseaseImpactAnalysis
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("analysis_date DESC, created_at DESC").
		Limit(limit).
		Find(&analyses).Error
	if err != nil {
		return nil, err
	}
	return analyses, nil
}
