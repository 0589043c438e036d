package repository

import (
	"context"
	"time"

	"healthguard-api/internal/domain/entity"
	domainRepo "healthguard-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type dailyHealthLogRepository struct{}

func NewDailyHealthLogRepository() domainRepo.DailyHealthLogRepository {
	return &dailyHealthLogRepository{}
}

func (r *dailyHealthLogRepository) Upsert(ctx context.Context, db *gorm.DB, log *entity.DailyHealthLog) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "log_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"sleep_hours", "exercise_minutes", "stress_level",
			"calories_intake", "water_intake_ml", "mood_level",
			"notes", "updated_at",
		}),
	}).Create(log).Error
}

func (r *dailyHealthLogRepository) FindRecentByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]entity.DailyHealthLog, error) {
	var logs []entity.DailyHealthLog
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("log_date DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	// callers expect chronological order ending at the most recent date
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}
	return logs, nil
}

func (r *dailyHealthLogRepository) FindByUserIDInRange(ctx context.Context, db *gorm.DB, userID uuid.UUID, from, to time.Time) ([]entity.DailyHealthLog, error) {
	var logs []entity.DailyHealthLog
	err := db.WithContext(ctx).
		Where("user_id = ? AND log_date BETWEEN ? AND ?", userID, from, to).
		Order("log_date ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *dailyHealthLogRepository) CountByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.DailyHealthLog{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
