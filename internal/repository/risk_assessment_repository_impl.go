package repository

import (
	"context"
	"errors"

	"healthguard-api/internal/domain/entity"
	domainRepo "healthguard-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type riskAssessmentRepository struct{}

func NewRiskAssessmentRepository() domainRepo.RiskAssessmentRepository {
	return &riskAssessmentRepository{}
}

func (r *riskAssessmentRepository) Create(ctx context.Context, db *gorm.DB, assessment *entity.RiskAssessment) error {
	return db.WithContext(ctx).Create(assessment).Error
}

func (r *riskAssessmentRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]entity.RiskAssessment, error) {
	var assessments []entity.RiskAssessment
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("assessment_date DESC, created_at DESC").
		Limit(limit).
		Find(&assessments).Error
	if err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *riskAssessmentRepository) FindLatestByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.RiskAssessment, error) {
	var assessment entity.RiskAssessment
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("assessment_date DESC, created_at DESC").
		First(&assessment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assessment, nil
}
