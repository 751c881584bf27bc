package patient

import (
	"time"

	"github.com/google/uuid"
)

// Gender is a closed set; anything else is rejected at the service boundary.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Patient maps to the patients table. Patients exist independently of visits;
// one patient may accumulate many visits over time.
type Patient struct {
	ID                    uuid.UUID  `db:"id" json:"id"`
	PatientCode           string     `db:"patient_code" json:"patient_code"`
	NationalID            *string    `db:"national_id" json:"national_id,omitempty"`
	FirstName             string     `db:"first_name" json:"first_name"`
	LastName              string     `db:"last_name" json:"last_name"`
	DateOfBirth           time.Time  `db:"date_of_birth" json:"date_of_birth"`
	Gender                *Gender    `db:"gender" json:"gender,omitempty"`
	Phone                 *string    `db:"phone" json:"phone,omitempty"`
	Email                 *string    `db:"email" json:"email,omitempty"`
	Address               *string    `db:"address" json:"address,omitempty"`
	EmergencyContactName  *string    `db:"emergency_contact_name" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string    `db:"emergency_contact_phone" json:"emergency_contact_phone,omitempty"`
	BloodGroup            *string    `db:"blood_group" json:"blood_group,omitempty"`
	Allergies             *string    `db:"allergies" json:"allergies,omitempty"`
	ChronicConditions     *string    `db:"chronic_conditions" json:"chronic_conditions,omitempty"`
	IsActive              bool       `db:"is_active" json:"is_active"`
	CreatedAt             time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at" json:"updated_at"`
}
