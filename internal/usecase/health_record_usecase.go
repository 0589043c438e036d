package usecase

import (
	"context"
	"errors"
	"time"

	"healthguard-api/internal/converter"
	"healthguard-api/internal/delivery/dto"
	"healthguard-api/internal/domain/entity"
	"healthguard-api/internal/domain/repository"
	"healthguard-api/internal/service"
	"healthguard-api/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrRecordNotFound = errors.New("health record not found")

type HealthRecordUsecase interface {
	CreateRecord(ctx context.Context, userID uuid.UUID, req *dto.CreateHealthRecordRequest) (*dto.HealthRecordResponse, error)
	ListRecords(ctx context.Context, userID uuid.UUID, page, limit int) ([]dto.HealthRecordResponse, *response.Meta, error)
	LatestRecord(ctx context.Context, userID uuid.UUID) (*dto.HealthRecordResponse, error)
}

type healthRecordUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	recordRepo   repository.HealthRecordRepository
	auditService service.AuditService
}

func NewHealthRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.HealthRecordRepository,
	auditService service.AuditService,
) HealthRecordUsecase {
	return &healthRecordUsecase{
		db:           db,
		log:          log,
		recordRepo:   recordRepo,
		auditService: auditService,
	}
}

func (u *healthRecordUsecase) CreateRecord(ctx context.Context, userID uuid.UUID, req *dto.CreateHealthRecordRequest) (*dto.HealthRecordResponse, error) {
	recordDate, err := time.Parse("2006-01-02", req.RecordDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record := &entity.HealthRecord{
		UserID:                 userID,
		RecordDate:             recordDate,
		HeartRate:              req.HeartRate,
		BloodPressureSystolic:  req.BloodPressureSystolic,
		BloodPressureDiastolic: req.BloodPressureDiastolic,
		BloodSugar:             req.BloodSugar,
		Temperature:            req.Temperature,
		WeightKg:               req.WeightKg,
		OxygenSaturation:       req.OxygenSaturation,
		Notes:                  req.Notes,
	}

	if err := u.recordRepo.Create(ctx, tx, record); err != nil {
		u.log.Warnf("Failed to create health record: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionHealthRecordCreate, "health_record", record.ID.String(), converter.HealthRecordToResponse(record)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.HealthRecordToResponse(record), nil
}

func (u *healthRecordUsecase) ListRecords(ctx context.Context, userID uuid.UUID, page, limit int) ([]dto.HealthRecordResponse, *response.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	records, err := u.recordRepo.FindByUserID(ctx, u.db, userID, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list health records: %+v", err)
		return nil, nil, err
	}

	total, err := u.recordRepo.CountByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to count health records: %+v", err)
		return nil, nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	meta := &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}

	return converter.HealthRecordsToResponses(records), meta, nil
}

func (u *healthRecordUsecase) LatestRecord(ctx context.Context, userID uuid.UUID) (*dto.HealthRecordResponse, error) {
	record, err := u.recordRepo.FindLatestByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find latest health record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	return converter.HealthRecordToResponse(record), nil
}
