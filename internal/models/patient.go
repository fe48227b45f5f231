package models

// PatientDB represents a patient record in the database
type PatientDB struct {
	ID                    int64   `json:"id" db:"id"`                                           // Primary key
	Age                   int     `json:"age" db:"age"`                                         // Age in years
	Gender                string  `json:"gender" db:"gender"`                                   // Free-form gender label
	BMI                   float64 `json:"bmi" db:"bmi"`                                         // Body mass index
	SystolicBP            int     `json:"systolicBP" db:"systolic_bp"`                          // Systolic blood pressure
	DiastolicBP           int     `json:"diastolicBP" db:"diastolic_bp"`                        // Diastolic blood pressure
	HeartRate             int     `json:"heartRate" db:"heart_rate"`                            // Resting heart rate
	Smoker                bool    `json:"smoker" db:"smoker"`                                   // Smoker flag
	DiabeticFamilyHistory bool    `json:"diabeticFamilyHistory" db:"diabetic_family_history"`   // Family history of diabetes
}
