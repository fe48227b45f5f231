package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/health-risk-predictor/internal/logger"
	"github.com/sbilibin2017/health-risk-predictor/internal/models"
)

type PatientWriteRepository struct {
	db *sqlx.DB
}

func NewPatientWriteRepository(db *sqlx.DB) *PatientWriteRepository {
	return &PatientWriteRepository{db: db}
}

// Save inserts a patient row and returns the stored record with its generated id.
func (r *PatientWriteRepository) Save(ctx context.Context, patient models.PatientDB) (*models.PatientDB, error) {
	query := `
		INSERT INTO patients (age, gender, bmi, systolic_bp, diastolic_bp, heart_rate, smoker, diabetic_family_history)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, age, gender, bmi, systolic_bp, diastolic_bp, heart_rate, smoker, diabetic_family_history
	`
	args := []any{
		patient.Age, patient.Gender, patient.BMI,
		patient.SystolicBP, patient.DiastolicBP,
		patient.HeartRate, patient.Smoker, patient.DiabeticFamilyHistory,
	}

	var saved models.PatientDB
	err := r.db.GetContext(ctx, &saved, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", saved,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &saved, nil
}

type PatientReadRepository struct {
	db *sqlx.DB
}

func NewPatientReadRepository(db *sqlx.DB) *PatientReadRepository {
	return &PatientReadRepository{db: db}
}

// ListAll returns every patient row in insertion order.
func (r *PatientReadRepository) ListAll(ctx context.Context) ([]models.PatientDB, error) {
	const query = `
		SELECT id, age, gender, bmi, systolic_bp, diastolic_bp, heart_rate, smoker, diabetic_family_history
		FROM patients
		ORDER BY id
	`

	patients := make([]models.PatientDB, 0)
	err := r.db.SelectContext(ctx, &patients, query)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(patients),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return patients, nil
}
