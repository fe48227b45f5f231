package models

import "time"

// PredictionHistoryDB represents a stored risk prediction in the database.
// A row is written once per successful prediction and never mutated.
type PredictionHistoryDB struct {
	ID            int64     `json:"id" db:"id"`                         // Primary key
	Age           int       `json:"age" db:"age"`                       // Copied from the request
	BMI           float64   `json:"bmi" db:"bmi"`                       // Copied from the request
	HeartRate     int       `json:"heartRate" db:"heart_rate"`          // Copied from the request
	Smoker        bool      `json:"smoker" db:"smoker"`                 // Copied from the request
	FamilyHistory bool      `json:"familyHistory" db:"family_history"`  // Copied from the request
	RiskScore     float64   `json:"riskScore" db:"risk_score"`          // Returned by the scoring service
	RiskLevel     string    `json:"riskLevel" db:"risk_level"`          // Returned by the scoring service
	Username      string    `json:"username" db:"username"`             // Authenticated caller
	PredictedAt   time.Time `json:"predictedAt" db:"predicted_at"`      // Prediction timestamp
}
