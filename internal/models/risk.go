package models

// RiskRequest is the payload for a risk prediction. The same shape is sent to
// the external scoring service after validation.
// swagger:model RiskRequest
type RiskRequest struct {
	// Age in years
	// required: true
	// default: 45
	Age int `json:"age"`

	// Body mass index
	// required: true
	// default: 27.5
	BMI float64 `json:"bmi"`

	// Resting heart rate
	// required: true
	// default: 72
	HeartRate int `json:"heartRate"`

	// Smoker flag
	// default: false
	Smoker bool `json:"smoker"`

	// Family history of disease
	// default: false
	FamilyHistory bool `json:"familyHistory"`
}

// RiskResponse is the result of a risk prediction returned to the caller.
// swagger:model RiskResponse
type RiskResponse struct {
	// Numeric risk score produced by the scoring service
	// default: 0.8
	RiskScore float64 `json:"riskScore"`

	// Categorical risk label produced by the scoring service
	// default: HIGH
	RiskLevel string `json:"riskLevel"`

	// Advisory text accompanying the score
	// default: AI-generated preventive recommendation
	Recommendation string `json:"recommendation"`
}
