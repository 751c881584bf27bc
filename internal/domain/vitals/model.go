package vitals

import (
	"time"

	"github.com/google/uuid"
)

// VitalSigns is one bedside reading taken during a visit. All measurements
// are optional; a reading records whichever values were actually taken.
type VitalSigns struct {
	ID                     uuid.UUID `db:"id" json:"id"`
	VisitID                uuid.UUID `db:"visit_id" json:"visit_id"`
	RecordedByDoctorID     uuid.UUID `db:"recorded_by_doctor_id" json:"recorded_by_doctor_id"`
	RecordedAt             time.Time `db:"recorded_at" json:"recorded_at"`
	Temperature            *float64  `db:"temperature" json:"temperature,omitempty"`
	BloodPressureSystolic  *int      `db:"blood_pressure_systolic" json:"blood_pressure_systolic,omitempty"`
	BloodPressureDiastolic *int      `db:"blood_pressure_diastolic" json:"blood_pressure_diastolic,omitempty"`
	HeartRate              *int      `db:"heart_rate" json:"heart_rate,omitempty"`
	RespiratoryRate        *int      `db:"respiratory_rate" json:"respiratory_rate,omitempty"`
	OxygenSaturation       *float64  `db:"oxygen_saturation" json:"oxygen_saturation,omitempty"`
	WeightKg               *float64  `db:"weight_kg" json:"weight_kg,omitempty"`
	HeightCm               *float64  `db:"height_cm" json:"height_cm,omitempty"`
	BMI                    *float64  `db:"bmi" json:"bmi,omitempty"`
	Notes                  *string   `db:"notes" json:"notes,omitempty"`
}
