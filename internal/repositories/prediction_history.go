package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/health-risk-predictor/internal/logger"
	"github.com/sbilibin2017/health-risk-predictor/internal/models"
)

// PredictionHistoryWriteRepository persists prediction history rows.
// Writes join the request transaction when one is present in the context.
type PredictionHistoryWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPredictionHistoryWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PredictionHistoryWriteRepository {
	return &PredictionHistoryWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a single prediction history row.
func (r *PredictionHistoryWriteRepository) Save(ctx context.Context, history models.PredictionHistoryDB) error {
	query := `
		INSERT INTO prediction_history (age, bmi, heart_rate, smoker, family_history, risk_score, risk_level, username, predicted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	args := []any{
		history.Age, history.BMI, history.HeartRate,
		history.Smoker, history.FamilyHistory,
		history.RiskScore, history.RiskLevel,
		history.Username, history.PredictedAt,
	}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

type PredictionHistoryReadRepository struct {
	db *sqlx.DB
}

func NewPredictionHistoryReadRepository(db *sqlx.DB) *PredictionHistoryReadRepository {
	return &PredictionHistoryReadRepository{db: db}
}

// ListByUsername returns all prediction history rows for the given username.
// A caller with no predictions gets an empty slice, not an error.
func (r *PredictionHistoryReadRepository) ListByUsername(ctx context.Context, username string) ([]models.PredictionHistoryDB, error) {
	const query = `
		SELECT id, age, bmi, heart_rate, smoker, family_history, risk_score, risk_level, username, predicted_at
		FROM prediction_history
		WHERE username = $1
		ORDER BY id
	`

	rows := make([]models.PredictionHistoryDB, 0)
	err := r.db.SelectContext(ctx, &rows, query, username)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return rows, nil
}
