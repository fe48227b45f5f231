package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/health-risk-predictor/internal/models"
	"github.com/sbilibin2017/health-risk-predictor/internal/services"
	"github.com/stretchr/testify/assert"
)

func validRiskRequest() models.RiskRequest {
	return models.RiskRequest{
		Age:           45,
		BMI:           27.5,
		HeartRate:     72,
		Smoker:        false,
		FamilyHistory: false,
	}
}

func TestRiskService_CalculateRisk_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No scorer or writer calls are expected on validation failure.
	mockScorer := services.NewMockRiskScorer(ctrl)
	mockWriter := services.NewMockPredictionHistoryWriter(ctrl)
	mockLister := services.NewMockPredictionHistoryLister(ctrl)

	svc := services.NewRiskService(mockScorer, mockWriter, mockLister)

	tests := []struct {
		name      string
		mutate    func(*models.RiskRequest)
		wantField string
	}{
		{name: "age too low", mutate: func(r *models.RiskRequest) { r.Age = 0 }, wantField: "age"},
		{name: "age too high", mutate: func(r *models.RiskRequest) { r.Age = 150 }, wantField: "age"},
		{name: "bmi too low", mutate: func(r *models.RiskRequest) { r.BMI = 9.9 }, wantField: "bmi"},
		{name: "bmi too high", mutate: func(r *models.RiskRequest) { r.BMI = 60.1 }, wantField: "bmi"},
		{name: "heart rate too low", mutate: func(r *models.RiskRequest) { r.HeartRate = 39 }, wantField: "heartRate"},
		{name: "heart rate too high", mutate: func(r *models.RiskRequest) { r.HeartRate = 201 }, wantField: "heartRate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRiskRequest()
			tt.mutate(&req)

			resp, err := svc.CalculateRisk(context.Background(), "alice", req)
			assert.Nil(t, resp)

			var verr *services.ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestRiskService_CalculateRisk_BoundaryValuesAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScorer := services.NewMockRiskScorer(ctrl)
	mockWriter := services.NewMockPredictionHistoryWriter(ctrl)
	mockLister := services.NewMockPredictionHistoryLister(ctrl)

	svc := services.NewRiskService(mockScorer, mockWriter, mockLister)

	reqs := []models.RiskRequest{
		{Age: 1, BMI: 10, HeartRate: 40},
		{Age: 120, BMI: 60, HeartRate: 200},
	}

	for _, req := range reqs {
		mockScorer.EXPECT().
			GetRiskScore(gomock.Any(), req).
			Return(0.1, "LOW", nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(nil)

		resp, err := svc.CalculateRisk(context.Background(), "alice", req)
		assert.NoError(t, err)
		assert.NotNil(t, resp)
	}
}

func TestRiskService_CalculateRisk_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScorer := services.NewMockRiskScorer(ctrl)
	mockWriter := services.NewMockPredictionHistoryWriter(ctrl)
	mockLister := services.NewMockPredictionHistoryLister(ctrl)

	svc := services.NewRiskService(mockScorer, mockWriter, mockLister)

	req := validRiskRequest()
	req.Smoker = true

	mockScorer.EXPECT().
		GetRiskScore(gomock.Any(), req).
		Return(0.8, "HIGH", nil)

	var saved models.PredictionHistoryDB
	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, history models.PredictionHistoryDB) error {
			saved = history
			return nil
		})

	before := time.Now()
	resp, err := svc.CalculateRisk(context.Background(), "alice", req)
	assert.NoError(t, err)

	assert.Equal(t, 0.8, resp.RiskScore)
	assert.Equal(t, "HIGH", resp.RiskLevel)
	assert.Equal(t, "AI-generated preventive recommendation", resp.Recommendation)

	// Stored row copies the request fields and binds the caller identity.
	assert.Equal(t, req.Age, saved.Age)
	assert.Equal(t, req.BMI, saved.BMI)
	assert.Equal(t, req.HeartRate, saved.HeartRate)
	assert.Equal(t, req.Smoker, saved.Smoker)
	assert.Equal(t, req.FamilyHistory, saved.FamilyHistory)
	assert.Equal(t, 0.8, saved.RiskScore)
	assert.Equal(t, "HIGH", saved.RiskLevel)
	assert.Equal(t, "alice", saved.Username)
	assert.False(t, saved.PredictedAt.Before(before))
}

func TestRiskService_CalculateRisk_ScorerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScorer := services.NewMockRiskScorer(ctrl)
	mockWriter := services.NewMockPredictionHistoryWriter(ctrl)
	mockLister := services.NewMockPredictionHistoryLister(ctrl)

	svc := services.NewRiskService(mockScorer, mockWriter, mockLister)

	req := validRiskRequest()

	// No history write when the scoring call fails.
	mockScorer.EXPECT().
		GetRiskScore(gomock.Any(), req).
		Return(0.0, "", errors.New("connection refused"))

	resp, err := svc.CalculateRisk(context.Background(), "alice", req)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, services.ErrScoringUnavailable)
}

func TestRiskService_CalculateRisk_HistoryWriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScorer := services.NewMockRiskScorer(ctrl)
	mockWriter := services.NewMockPredictionHistoryWriter(ctrl)
	mockLister := services.NewMockPredictionHistoryLister(ctrl)

	svc := services.NewRiskService(mockScorer, mockWriter, mockLister)

	req := validRiskRequest()

	mockScorer.EXPECT().
		GetRiskScore(gomock.Any(), req).
		Return(0.8, "HIGH", nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(errors.New("insert failed"))

	resp, err := svc.CalculateRisk(context.Background(), "alice", req)
	assert.Nil(t, resp)
	assert.EqualError(t, err, "insert failed")
}

func TestRiskService_ListHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScorer := services.NewMockRiskScorer(ctrl)
	mockWriter := services.NewMockPredictionHistoryWriter(ctrl)
	mockLister := services.NewMockPredictionHistoryLister(ctrl)

	svc := services.NewRiskService(mockScorer, mockWriter, mockLister)

	t.Run("empty history is not an error", func(t *testing.T) {
		mockLister.EXPECT().
			ListByUsername(gomock.Any(), "alice").
			Return([]models.PredictionHistoryDB{}, nil)

		rows, err := svc.ListHistory(context.Background(), "alice")
		assert.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("returns rows for the caller", func(t *testing.T) {
		want := []models.PredictionHistoryDB{
			{ID: 1, Username: "alice", RiskScore: 0.8, RiskLevel: "HIGH"},
			{ID: 2, Username: "alice", RiskScore: 0.2, RiskLevel: "LOW"},
		}
		mockLister.EXPECT().
			ListByUsername(gomock.Any(), "alice").
			Return(want, nil)

		rows, err := svc.ListHistory(context.Background(), "alice")
		assert.NoError(t, err)
		assert.Equal(t, want, rows)
	})

	t.Run("lister error", func(t *testing.T) {
		mockLister.EXPECT().
			ListByUsername(gomock.Any(), "alice").
			Return(nil, errors.New("db error"))

		rows, err := svc.ListHistory(context.Background(), "alice")
		assert.Error(t, err)
		assert.Nil(t, rows)
	})
}
