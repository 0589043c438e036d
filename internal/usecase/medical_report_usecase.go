package usecase

import (
	"context"
	"time"

	"healthguard-api/internal/converter"
	"healthguard-api/internal/delivery/dto"
	"healthguard-api/internal/domain/entity"
	"healthguard-api/internal/domain/repository"
	"healthguard-api/internal/engine/report"
	"healthguard-api/internal/infrastructure/messaging"
	"healthguard-api/internal/service"
	"healthguard-api/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const EventReportUploaded = "medical_report.uploaded"

type MedicalReportUsecase interface {
	UploadReport(ctx context.Context, userID uuid.UUID, req *dto.UploadReportRequest) (*dto.MedicalReportResponse, error)
	ListReports(ctx context.Context, userID uuid.UUID, page, limit int) ([]dto.MedicalReportResponse, *response.Meta, error)
	ReportTypes() []string
}

type medicalReportUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	reportRepo   repository.MedicalReportRepository
	auditService service.AuditService
	producer     *messaging.Producer
}

func NewMedicalReportUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reportRepo repository.MedicalReportRepository,
	auditService service.AuditService,
	producer *messaging.Producer,
) MedicalReportUsecase {
	return &medicalReportUsecase{
		db:           db,
		log:          log,
		reportRepo:   reportRepo,
		auditService: auditService,
		producer:     producer,
	}
}

// UploadReport stores report metadata with the canned analysis for its type.
// File contents are never persisted; the stored URL is a placeholder for the
// original file name.
func (u *medicalReportUsecase) UploadReport(ctx context.Context, userID uuid.UUID, req *dto.UploadReportRequest) (*dto.MedicalReportResponse, error) {
	reportDate, err := time.Parse("2006-01-02", req.ReportDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	analysis := report.Classify(req.ReportType)

	medicalReport := &entity.MedicalReport{
		UserID:          userID,
		ReportType:      req.ReportType,
		ReportDate:      reportDate,
		FileName:        req.FileName,
		FileURL:         "placeholder-url/" + req.FileName,
		Findings:        datatypes.JSONSlice[string](analysis.Findings),
		RiskFactors:     datatypes.JSONSlice[string](analysis.RiskFactors),
		Recommendations: datatypes.JSONSlice[string](analysis.Recommendations),
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.reportRepo.Create(ctx, tx, medicalReport); err != nil {
		u.log.Warnf("Failed to create medical report: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionReportUpload, "medical_report", medicalReport.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if err := u.producer.PublishEvent(ctx, EventReportUploaded, userID, map[string]interface{}{
		"report_id":   medicalReport.ID.String(),
		"report_type": medicalReport.ReportType,
	}); err != nil {
		u.log.Warnf("Failed to publish event: %+v", err)
	}

	return converter.MedicalReportToResponse(medicalReport), nil
}

func (u *medicalReportUsecase) ListReports(ctx context.Context, userID uuid.UUID, page, limit int) ([]dto.MedicalReportResponse, *response.Meta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	reports, err := u.reportRepo.FindByUserID(ctx, u.db, userID, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list medical reports: %+v", err)
		return nil, nil, err
	}

	total, err := u.reportRepo.CountByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to count medical reports: %+v", err)
		return nil, nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	meta := &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}

	return converter.MedicalReportsToResponses(reports), meta, nil
}

// ReportTypes lists the upload types offered by the client form.
func (u *medicalReportUsecase) ReportTypes() []string {
	return report.ReportTypes
}
