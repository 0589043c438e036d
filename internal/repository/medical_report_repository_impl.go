package repository

import (
	"context"

	"healthguard-api/internal/domain/entity"
	domainRepo "healthguard-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalReportRepository struct{}

func NewMedicalReportRepository() domainRepo.MedicalReportRepository {
	return &medicalReportRepository{}
}

func (r *medicalReportRepository) Create(ctx context.Context, db *gorm.DB, report *entity.MedicalReport) error {
	return db.WithContext(ctx).Create(report).Error
}

func (r *medicalReportRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit, offset int) ([]entity.MedicalReport, error) {
	var reports []entity.MedicalReport
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("report_date DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *medicalReportRepository) CountByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.MedicalReport{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
