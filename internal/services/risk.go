package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/health-risk-predictor/internal/logger"
	"github.com/sbilibin2017/health-risk-predictor/internal/models"
)

// ErrScoringUnavailable wraps any failure of the external scoring call:
// unreachable service, timeout, or malformed reply.
var ErrScoringUnavailable = errors.New("risk scoring service unavailable")

// recommendationText is a static placeholder until a real recommendation
// engine exists.
const recommendationText = "AI-generated preventive recommendation"

// Request field bounds.
const (
	minAge       = 1
	maxAge       = 120
	minBMI       = 10.0
	maxBMI       = 60.0
	minHeartRate = 40
	maxHeartRate = 200
)

// ValidationError reports a request field outside its allowed bounds.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// RiskScorer fetches a risk score from the external scoring service.
type RiskScorer interface {
	GetRiskScore(ctx context.Context, req models.RiskRequest) (float64, string, error)
}

// PredictionHistoryWriter persists prediction history rows.
type PredictionHistoryWriter interface {
	Save(ctx context.Context, history models.PredictionHistoryDB) error
}

// PredictionHistoryLister reads prediction history rows by username.
type PredictionHistoryLister interface {
	ListByUsername(ctx context.Context, username string) ([]models.PredictionHistoryDB, error)
}

// RiskService validates risk requests, delegates scoring to the external
// service, and records each successful prediction.
type RiskService struct {
	scorer RiskScorer
	writer PredictionHistoryWriter
	lister PredictionHistoryLister
}

// NewRiskService creates a new RiskService instance.
func NewRiskService(scorer RiskScorer, writer PredictionHistoryWriter, lister PredictionHistoryLister) *RiskService {
	return &RiskService{
		scorer: scorer,
		writer: writer,
		lister: lister,
	}
}

// validate checks the request bounds. It must run before any outbound call.
func validate(req models.RiskRequest) *ValidationError {
	if req.Age < minAge || req.Age > maxAge {
		return &ValidationError{Field: "age", Message: fmt.Sprintf("must be between %d and %d", minAge, maxAge)}
	}
	if req.BMI < minBMI || req.BMI > maxBMI {
		return &ValidationError{Field: "bmi", Message: fmt.Sprintf("must be between %g and %g", minBMI, maxBMI)}
	}
	if req.HeartRate < minHeartRate || req.HeartRate > maxHeartRate {
		return &ValidationError{Field: "heartRate", Message: fmt.Sprintf("must be between %d and %d", minHeartRate, maxHeartRate)}
	}
	return nil
}

// CalculateRisk scores a validated request for the authenticated caller and
// persists the outcome. A history write failure fails the whole request.
func (svc *RiskService) CalculateRisk(ctx context.Context, username string, req models.RiskRequest) (*models.RiskResponse, error) {
	if verr := validate(req); verr != nil {
		logger.Log.Errorw("risk request validation failed", "field", verr.Field, "err", verr.Message)
		return nil, verr
	}

	score, level, err := svc.scorer.GetRiskScore(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to get risk score", "username", username, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrScoringUnavailable, err)
	}

	history := models.PredictionHistoryDB{
		Age:           req.Age,
		BMI:           req.BMI,
		HeartRate:     req.HeartRate,
		Smoker:        req.Smoker,
		FamilyHistory: req.FamilyHistory,
		RiskScore:     score,
		RiskLevel:     level,
		Username:      username,
		PredictedAt:   time.Now(),
	}
	if err := svc.writer.Save(ctx, history); err != nil {
		logger.Log.Errorw("failed to save prediction history", "username", username, "err", err)
		return nil, err
	}

	return &models.RiskResponse{
		RiskScore:      score,
		RiskLevel:      level,
		Recommendation: recommendationText,
	}, nil
}

// ListHistory returns all stored predictions belonging to the given caller.
func (svc *RiskService) ListHistory(ctx context.Context, username string) ([]models.PredictionHistoryDB, error) {
	rows, err := svc.lister.ListByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to list prediction history", "username", username, "err", err)
		return nil, err
	}
	return rows, nil
}
