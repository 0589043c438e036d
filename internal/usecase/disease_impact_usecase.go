package usecase

import (
	"context"
	"errors"
	"time"

	"healthguard-api/internal/converter"
	"healthguard-api/internal/delivery/dto"
	"healthguard-api/internal/domain/entity"
	"healthguard-api/internal/domain/repository"
	"healthguard-api/internal/engine/impact"
	"healthguard-api/internal/infrastructure/messaging"
	"healthguard-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	// Insights need at least this many logged days to be meaningful.
	minLogsForInsights = 3
	insightLogWindow   = 30

	EventInsightGenerated = "disease_impact.generated"
)

var ErrNotEnoughLogs = errors.New("not enough daily logs to generate insights")

type DiseaseImpactUsecase interface {
	GenerateInsights(ctx context.Context, userID uuid.UUID) ([]dto.DiseaseImpactResponse, error)
	ListInsights(ctx context.Context, userID uuid.UUID, limit int) ([]dto.DiseaseImpactResponse, error)
}

type diseaseImpactUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	profileRepo  repository.ProfileRepository
	logRepo      repository.DailyHealthLogRepository
	impactRepo   repository.DiseaseImpactRepository
	auditService service.AuditService
	producer     *messaging.Producer
}

func NewDiseaseImpactUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	profileRepo repository.ProfileRepository,
	logRepo repository.DailyHealthLogRepository,
	impactRepo repository.DiseaseImpactRepository,
	auditService service.AuditService,
	producer *messaging.Producer,
) DiseaseImpactUsecase {
	return &diseaseImpactUsecase{
		db:           db,
		log:          log,
		profileRepo:  profileRepo,
		logRepo:      logRepo,
		impactRepo:   impactRepo,
		auditService: auditService,
		producer:     producer,
	}
}

// GenerateInsights runs the impact rules over the recent daily logs and
// appends one analysis row per disease. Fails without writing when fewer
// than three days have been logged.
func (u *diseaseImpactUsecase) GenerateInsights(ctx context.Context, userID uuid.UUID) ([]dto.DiseaseImpactResponse, error) {
	count, err := u.logRepo.CountByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to count daily logs: %+v", err)
		return nil, err
	}
	if count < minLogsForInsights {
		return nil, ErrNotEnoughLogs
	}

	profile, err := u.profileRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	logs, err := u.logRepo.FindRecentByUserID(ctx, u.db, userID, insightLogWindow)
	if err != nil {
		u.log.Warnf("Failed to find recent daily logs: %+v", err)
		return nil, err
	}

	engineLogs := make([]impact.DailyLog, 0, len(logs))
	for i := range logs {
		engineLogs = append(engineLogs, impact.DailyLog{
			SleepHours:      logs[i].SleepHours,
			ExerciseMinutes: logs[i].ExerciseMinutes,
			StressLevel:     logs[i].StressLevel,
		})
	}

	results := impact.Analyze(profile.MedicalConditions, engineLogs)

	now := time.Now()
	analyses := make([]entity.DiseaseImpactAnalysis, 0, len(results))
	for _, result := range results {
		analyses = append(analyses, entity.DiseaseImpactAnalysis{
			UserID:              userID,
			DiseaseName:         result.DiseaseName,
			CurrentRiskLevel:    result.RiskLevel,
			RiskTrend:           entity.RiskTrend(result.Trend),
			ContributingFactors: datatypes.NewJSONType(result.ContributingFactors),
			PreventiveActions:   datatypes.JSONSlice[string](result.PreventiveActions),
			Precautions:         datatypes.JSONSlice[string](result.Precautions),
			LifestyleRemedies:   datatypes.JSONSlice[string](result.LifestyleRemedies),
			AnalysisDate:        now,
		})
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.impactRepo.CreateBatch(ctx, tx, analyses); err != nil {
		u.log.Warnf("Failed to create disease impact analyses: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionInsightGenerate, "disease_impact_analysis", userID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if err := u.producer.PublishEvent(ctx, EventInsightGenerated, userID, map[string]interface{}{
		"diseases": len(analyses),
	}); err != nil {
		u.log.Warnf("Failed to publish event: %+v", err)
	}

	return converter.DiseaseImpactsToResponses(analyses), nil
}

func (u *diseaseImpactUsecase) ListInsights(ctx context.Context, userID uuid.UUID, limit int) ([]dto.DiseaseImpactResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 30
	}

	analyses, err := u.impactRepo.FindByUserID(ctx, u.db, userID, limit)
	if err != nil {
		u.log.Warnf("Failed to list disease impact analyses: %+v", err)
		return nil, err
	}

	return converter.DiseaseImpactsToResponses(analyses), nil
}
