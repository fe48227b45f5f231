package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/health-risk-predictor/internal/logger"
	"github.com/sbilibin2017/health-risk-predictor/internal/models"
)

// RiskScoringHTTPFacade talks to the external ML scoring service over HTTP.
type RiskScoringHTTPFacade struct {
	client  *http.Client
	baseURL string
}

// NewRiskScoringHTTPFacade creates a new facade with an HTTP client and the
// scoring service base URL.
func NewRiskScoringHTTPFacade(client *http.Client, baseURL string) *RiskScoringHTTPFacade {
	return &RiskScoringHTTPFacade{client: client, baseURL: baseURL}
}

// predictResponse mirrors the scoring service reply. RiskScore is a pointer so
// a missing or non-numeric field is distinguishable from zero.
type predictResponse struct {
	RiskScore *float64 `json:"riskScore"`
	RiskLevel string   `json:"riskLevel"`
}

// GetRiskScore posts the validated request fields to /predict and returns the
// score and level from the reply.
func (f *RiskScoringHTTPFacade) GetRiskScore(ctx context.Context, req models.RiskRequest) (float64, string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return 0, "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return 0, "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(httpReq)
	if err != nil {
		logger.Log.Errorw("failed to call scoring service", "url", f.baseURL, "error", err)
		return 0, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.Errorw("scoring service returned non-2xx status", "status", resp.StatusCode)
		return 0, "", fmt.Errorf("scoring service returned status %d", resp.StatusCode)
	}

	var parsed predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		logger.Log.Errorw("failed to decode scoring service response", "error", err)
		return 0, "", fmt.Errorf("malformed scoring service response: %w", err)
	}

	if parsed.RiskScore == nil {
		return 0, "", fmt.Errorf("scoring service response missing riskScore")
	}
	if parsed.RiskLevel == "" {
		return 0, "", fmt.Errorf("scoring service response missing riskLevel")
	}

	return *parsed.RiskScore, parsed.RiskLevel, nil
}
