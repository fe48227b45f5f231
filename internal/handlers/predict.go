package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/health-risk-predictor/internal/jwt"
	"github.com/sbilibin2017/health-risk-predictor/internal/logger"
	"github.com/sbilibin2017/health-risk-predictor/internal/models"
	"github.com/sbilibin2017/health-risk-predictor/internal/services"
)

// PredictTokener defines only the token methods needed by this handler.
type PredictTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RiskCalculator defines the interface that the risk service must implement.
type RiskCalculator interface {
	CalculateRisk(ctx context.Context, username string, req models.RiskRequest) (*models.RiskResponse, error)
}

// NewPredictHandler returns an HTTP handler for risk prediction.
// @Summary Predict health risk
// @Description Validates the request, delegates scoring to the external ML service, and records the prediction for the caller.
// @Tags risk
// @Accept json
// @Produce json
// @Param request body models.RiskRequest true "Risk prediction request"
// @Success 200 {object} models.Response "Risk calculated"
// @Failure 400 {object} models.Response "Field out of bounds / invalid request"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 502 {object} models.Response "Scoring service unavailable"
// @Router /api/risk/predict [post]
// @Security BearerAuth
func NewPredictHandler(tokener PredictTokener, calculator RiskCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.NewErrorResponse("Unauthorized"))
			return
		}

		claims, err := tokener.GetClaims(ctx, tokenStr)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.NewErrorResponse("Unauthorized"))
			return
		}

		var req models.RiskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.NewErrorResponse("invalid request body"))
			return
		}

		resp, err := calculator.CalculateRisk(ctx, claims.Username, req)
		if err != nil {
			var verr *services.ValidationError
			switch {
			case errors.As(err, &verr):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(models.NewErrorResponse(verr.Error()))
			case errors.Is(err, services.ErrScoringUnavailable):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(models.NewErrorResponse("Risk scoring service unavailable"))
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(models.NewErrorResponse("Internal server error"))
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.NewSuccessResponse(resp, "Risk calculated successfully"))
	}
}
