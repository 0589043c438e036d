package repository

import (
	"context"
	"errors"

	"healthguard-api/internal/domain/entity"
	domainRepo "healthguard-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type healthRecordRepository struct{}

func NewHealthRecordRepository() domainRepo.HealthRecordRepository {
	return &healthRecordRepository{}
}

func (r *healthRecordRepository) Create(ctx context.Context, db *gorm.DB, record *entity.HealthRecord) error {
	return db.WithContext(ctx).Create(record).Error
}

func (r *healthRecordRepository) FindRecentByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]entity.HealthRecord, error) {
	var records []entity.HealthRecord
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("record_date DESC, created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *healthRecordRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit, offset int) ([]entity.HealthRecord, error) {
	var records []entity.HealthRecord
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("record_date DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *healthRecordRepository) CountByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.HealthRecord{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *healthRecordRepository) FindLatestByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.HealthRecord, error) {
	var record entity.HealthRecord
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("record_date DESC, created_at DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}
