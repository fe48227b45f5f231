package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/health-risk-predictor/internal/logger"
	"github.com/sbilibin2017/health-risk-predictor/internal/models"
)

// PatientSaver defines the interface that the patient store must implement for writes.
type PatientSaver interface {
	Save(ctx context.Context, patient models.PatientDB) (*models.PatientDB, error)
}

// PatientLister defines the interface that the patient store must implement for reads.
type PatientLister interface {
	ListAll(ctx context.Context) ([]models.PatientDB, error)
}

// NewCreatePatientHandler returns an HTTP handler that stores a patient record.
// @Summary Create a patient
// @Description Persists a patient record and returns it with its generated id.
// @Tags patients
// @Accept json
// @Produce json
// @Param patient body models.PatientDB true "Patient fields, id ignored"
// @Success 201 {object} models.PatientDB "Stored patient"
// @Failure 400 {object} models.Response "Invalid request body"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /api/patients [post]
func NewCreatePatientHandler(saver PatientSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var patient models.PatientDB
		if err := json.NewDecoder(r.Body).Decode(&patient); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.NewErrorResponse("invalid request body"))
			return
		}
		// The id is always generated by the store.
		patient.ID = 0

		saved, err := saver.Save(r.Context(), patient)
		if err != nil {
			logger.Log.Errorw("failed to save patient", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.NewErrorResponse("Internal server error"))
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(saved)
	}
}

// NewListPatientsHandler returns an HTTP handler that lists all patient records.
// @Summary List patients
// @Description Returns all stored patient records.
// @Tags patients
// @Produce json
// @Success 200 {array} models.PatientDB "Stored patients"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /api/patients [get]
func NewListPatientsHandler(lister PatientLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		patients, err := lister.ListAll(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list patients", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.NewErrorResponse("Internal server error"))
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(patients)
	}
}
