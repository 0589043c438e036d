package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"sync"
	"time"

	"healthguard-api/internal/converter"
	"healthguard-api/internal/delivery/dto"
	"healthguard-api/internal/domain/entity"
	"healthguard-api/internal/domain/repository"
	"healthguard-api/internal/engine/risk"
	"healthguard-api/internal/infrastructure/messaging"
	"healthguard-api/internal/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	latestAssessmentTTL   = time.Hour
	assessmentRecordLimit = 10

	EventRiskAssessmentGenerated = "risk_assessment.generated"
)

var ErrAssessmentNotFound = errors.New("risk assessment not found")

type RiskAssessmentUsecase interface {
	GenerateAssessment(ctx context.Context, userID uuid.UUID) (*dto.RiskAssessmentResponse, error)
	ListAssessments(ctx context.Context, userID uuid.UUID, limit int) ([]dto.RiskAssessmentResponse, error)
	LatestAssessment(ctx context.Context, userID uuid.UUID) (*dto.RiskAssessmentResponse, error)
}

type riskAssessmentUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	profileRepo    repository.ProfileRepository
	recordRepo     repository.HealthRecordRepository
	assessmentRepo repository.RiskAssessmentRepository
	auditService   service.AuditService
	redisClient    *redis.Client
	producer       *messaging.Producer

	// rng drives the category jitter only; it is seeded once at startup and
	// guarded because assessments can be generated concurrently.
	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewRiskAssessmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	profileRepo repository.ProfileRepository,
	recordRepo repository.HealthRecordRepository,
	assessmentRepo repository.RiskAssessmentRepository,
	auditService service.AuditService,
	redisClient *redis.Client,
	producer *messaging.Producer,
	rng *rand.Rand,
) RiskAssessmentUsecase {
	return &riskAssessmentUsecase{
		db:             db,
		log:            log,
		profileRepo:    profileRepo,
		recordRepo:     recordRepo,
		assessmentRepo: assessmentRepo,
		auditService:   auditService,
		redisClient:    redisClient,
		producer:       producer,
		rng:            rng,
	}
}

// GenerateAssessment scores the user's current profile plus their most
// recent vitals and appends the result. Nothing is written when the profile
// is missing.
func (u *riskAssessmentUsecase) GenerateAssessment(ctx context.Context, userID uuid.UUID) (*dto.RiskAssessmentResponse, error) {
	profile, err := u.profileRepo.FindByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	records, err := u.recordRepo.FindRecentByUserID(ctx, u.db, userID, assessmentRecordLimit)
	if err != nil {
		u.log.Warnf("Failed to find recent health records: %+v", err)
		return nil, err
	}

	input := risk.Input{
		DateOfBirth: profile.DateOfBirth,
		HeightCm:    profile.HeightCm,
		WeightKg:    profile.WeightKg,
		Conditions:  profile.MedicalConditions,
		Records:     make([]risk.Record, 0, len(records)),
		Now:         time.Now(),
	}
	for i := range records {
		input.Records = append(input.Records, risk.Record{Systolic: records[i].BloodPressureSystolic})
	}

	u.rngMu.Lock()
	result := risk.Score(input, u.rng)
	u.rngMu.Unlock()

	conditions := result.Factors.Conditions
	if conditions == nil {
		conditions = []string{}
	}

	assessment := &entity.RiskAssessment{
		UserID:             userID,
		AssessmentDate:     input.Now,
		OverallRiskScore:   result.Overall,
		CardiovascularRisk: result.Cardiovascular,
		DiabetesRisk:       result.Diabetes,
		RespiratoryRisk:    result.Respiratory,
		CancerRisk:         result.Cancer,
		RiskFactors: datatypes.NewJSONType(entity.RiskFactorSnapshot{
			Age:        result.Factors.Age,
			BMI:        result.Factors.BMI,
			Conditions: conditions,
		}),
		Recommendations: datatypes.JSONSlice[string](result.Recommendations),
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.assessmentRepo.Create(ctx, tx, assessment); err != nil {
		u.log.Warnf("Failed to create risk assessment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionAssessmentGenerate, "risk_assessment", assessment.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	resp := converter.RiskAssessmentToResponse(assessment)
	u.cacheLatest(ctx, userID, resp)

	if err := u.producer.PublishEvent(ctx, EventRiskAssessmentGenerated, userID, map[string]interface{}{
		"assessment_id": assessment.ID.String(),
		"overall_score": assessment.OverallRiskScore,
	}); err != nil {
		u.log.Warnf("Failed to publish event: %+v", err)
	}

	return resp, nil
}

func (u *riskAssessmentUsecase) ListAssessments(ctx context.Context, userID uuid.UUID, limit int) ([]dto.RiskAssessmentResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	assessments, err := u.assessmentRepo.FindByUserID(ctx, u.db, userID, limit)
	if err != nil {
		u.log.Warnf("Failed to list risk assessments: %+v", err)
		return nil, err
	}

	return converter.RiskAssessmentsToResponses(assessments), nil
}

func (u *riskAssessmentUsecase) LatestAssessment(ctx context.Context, userID uuid.UUID) (*dto.RiskAssessmentResponse, error) {
	key := latestAssessmentKey(userID)
	if cached, err := u.redisClient.Get(ctx, key).Result(); err == nil {
		var resp dto.RiskAssessmentResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
	} else if err != redis.Nil {
		u.log.Warnf("Failed to read latest assessment from Redis: %+v", err)
	}

	assessment, err := u.assessmentRepo.FindLatestByUserID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find latest risk assessment: %+v", err)
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}

	resp := converter.RiskAssessmentToResponse(assessment)
	u.cacheLatest(ctx, userID, resp)

	return resp, nil
}

func (u *riskAssessmentUsecase) cacheLatest(ctx context.Context, userID uuid.UUID, resp *dto.RiskAssessmentResponse) {
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := u.redisClient.Set(ctx, latestAssessmentKey(userID), payload, latestAssessmentTTL).Err(); err != nil {
		u.log.Warnf("Failed to cache latest assessment: %+v", err)
	}
}

func latestAssessmentKey(userID uuid.UUID) string {
	return "risk_assessment:latest:" + userID.String()
}
