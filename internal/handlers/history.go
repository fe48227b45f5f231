package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/health-risk-predictor/internal/jwt"
	"github.com/sbilibin2017/health-risk-predictor/internal/logger"
	"github.com/sbilibin2017/health-risk-predictor/internal/models"
)

// HistoryTokener defines only the token methods needed by this handler.
type HistoryTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// HistoryLister defines the interface that the risk service must implement.
type HistoryLister interface {
	ListHistory(ctx context.Context, username string) ([]models.PredictionHistoryDB, error)
}

// NewHistoryHandler returns an HTTP handler that lists the caller's predictions.
// @Summary List prediction history
// @Description Returns all stored predictions belonging to the authenticated caller.
// @Tags risk
// @Produce json
// @Success 200 {object} models.Response "Prediction history"
// @Failure 401 {object} models.Response "Unauthorized"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /api/risk/history [get]
// @Security BearerAuth
func NewHistoryHandler(tokener HistoryTokener, lister HistoryLister) http.HandlerFunc {
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

		rows, err := lister.ListHistory(ctx, claims.Username)
		if err != nil {
			logger.Log.Errorw("failed to fetch prediction history", "username", claims.Username, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.NewErrorResponse("Internal server error"))
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.NewSuccessResponse(rows, "Prediction history fetched"))
	}
}
