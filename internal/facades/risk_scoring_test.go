package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sbilibin2017/health-risk-predictor/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestGetRiskScore(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/predict", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"riskScore": 0.8, "riskLevel": "HIGH"})
	}))
	defer srv.Close()

	facade := NewRiskScoringHTTPFacade(srv.Client(), srv.URL)

	score, level, err := facade.GetRiskScore(context.Background(), models.RiskRequest{
		Age: 45, BMI: 27.5, HeartRate: 72, Smoker: true, FamilyHistory: false,
	})
	assert.NoError(t, err)
	assert.Equal(t, 0.8, score)
	assert.Equal(t, "HIGH", level)

	assert.Equal(t, float64(45), gotBody["age"])
	assert.Equal(t, 27.5, gotBody["bmi"])
	assert.Equal(t, float64(72), gotBody["heartRate"])
	assert.Equal(t, true, gotBody["smoker"])
	assert.Equal(t, false, gotBody["familyHistory"])
}

func TestGetRiskScore_Non2xxStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	facade := NewRiskScoringHTTPFacade(srv.Client(), srv.URL)

	_, _, err := facade.GetRiskScore(context.Background(), models.RiskRequest{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGetRiskScore_MalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "not json at all"},
		{name: "missing riskScore", body: `{"riskLevel":"HIGH"}`},
		{name: "non-numeric riskScore", body: `{"riskScore":"high","riskLevel":"HIGH"}`},
		{name: "missing riskLevel", body: `{"riskScore":0.5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			facade := NewRiskScoringHTTPFacade(srv.Client(), srv.URL)

			_, _, err := facade.GetRiskScore(context.Background(), models.RiskRequest{})
			assert.Error(t, err)
		})
	}
}

func TestGetRiskScore_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed immediately so the call fails

	facade := NewRiskScoringHTTPFacade(&http.Client{Timeout: time.Second}, srv.URL)

	_, _, err := facade.GetRiskScore(context.Background(), models.RiskRequest{})
	assert.Error(t, err)
}

func TestGetRiskScore_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	facade := NewRiskScoringHTTPFacade(srv.Client(), srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, _, err := facade.GetRiskScore(ctx, models.RiskRequest{})
	assert.Error(t, err)
}
