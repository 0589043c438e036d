package usecase

import (
	"context"
	"time"

	"healthguard-api/internal/converter"
	"healthguard-api/internal/delivery/dto"
	"healthguard-api/internal/domain/entity"
	"healthguard-api/internal/domain/repository"
	"healthguard-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DailyLogUsecase interface {
	UpsertLog(ctx context.Context, userID uuid.UUID, req *dto.UpsertDailyLogRequest) (*dto.DailyLogResponse, error)
	ListLogs(ctx context.Context, userID uuid.UUID, from, to string) ([]dto.DailyLogResponse, error)
}

type dailyLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	logRepo      repository.DailyHealthLogRepository
	auditService service.AuditService
}

func NewDailyLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	logRepo repository.DailyHealthLogRepository,
	auditService service.AuditService,
) DailyLogUsecase {
	return &dailyLogUsecase{
		db:           db,
		log:          log,
		logRepo:      logRepo,
		auditService: auditService,
	}
}

// UpsertLog inserts the day's log or overwrites the existing one for the
// same date. Overwrites replace every metric field, including ones the new
// request leaves empty.
func (u *dailyLogUsecase) UpsertLog(ctx context.Context, userID uuid.UUID, req *dto.UpsertDailyLogRequest) (*dto.DailyLogResponse, error) {
	logDate, err := time.Parse("2006-01-02", req.LogDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	dailyLog := &entity.DailyHealthLog{
		UserID:          userID,
		LogDate:         logDate,
		SleepHours:      req.SleepHours,
		ExerciseMinutes: req.ExerciseMinutes,
		StressLevel:     req.StressLevel,
		CaloriesIntake:  req.CaloriesIntake,
		WaterIntakeML:   req.WaterIntakeML,
		MoodLevel:       req.MoodLevel,
		Notes:           req.Notes,
	}

	if err := u.logRepo.Upsert(ctx, tx, dailyLog); err != nil {
		u.log.Warnf("Failed to upsert daily log: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionDailyLogUpsert, "daily_health_log", dailyLog.ID.String(), converter.DailyLogToResponse(dailyLog)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DailyLogToResponse(dailyLog), nil
}

// ListLogs returns logs inside [from, to], chronological. Defaults cover the
// last 30 days when the range is not supplied.
func (u *dailyLogUsecase) ListLogs(ctx context.Context, userID uuid.UUID, from, to string) ([]dto.DailyLogResponse, error) {
	now := time.Now()
	fromDate := now.AddDate(0, 0, -30)
	toDate := now

	if from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		fromDate = parsed
	}
	if to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		toDate = parsed
	}

	logs, err := u.logRepo.FindByUserIDInRange(ctx, u.db, userID, fromDate, toDate)
	if err != nil {
		u.log.Warnf("Failed to list daily logs: %+v", err)
		return nil, err
	}

	return converter.DailyLogsToResponses(logs), nil
}
