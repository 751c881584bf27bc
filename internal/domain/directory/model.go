package directory

import (
	"time"

	"github.com/google/uuid"
)

// The directory holds reference entities owned by hospital administration.
// This service only reads them: joins, filters, and lookup endpoints. Nothing
// in the visit write path ever mutates a directory row.

// Hospital maps to the hospitals table.
type Hospital struct {
	ID            uuid.UUID `db:"id" json:"id"`
	HospitalName  string    `db:"hospital_name" json:"hospital_name"`
	HospitalCode  string    `db:"hospital_code" json:"hospital_code"`
	Address       *string   `db:"address" json:"address,omitempty"`
	Phone         *string   `db:"phone" json:"phone,omitempty"`
	Email         *string   `db:"email" json:"email,omitempty"`
	LicenseNumber *string   `db:"license_number" json:"license_number,omitempty"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Department maps to the departments table.
type Department struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	HospitalID     uuid.UUID  `db:"hospital_id" json:"hospital_id"`
	DepartmentName string     `db:"department_name" json:"department_name"`
	DepartmentCode string     `db:"department_code" json:"department_code"`
	HeadDoctorID   *uuid.UUID `db:"head_doctor_id" json:"head_doctor_id,omitempty"`
	IsActive       bool       `db:"is_active" json:"is_active"`
}

// Doctor maps to the doctors table.
type Doctor struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	HospitalID        uuid.UUID  `db:"hospital_id" json:"hospital_id"`
	DepartmentID      *uuid.UUID `db:"department_id" json:"department_id,omitempty"`
	DoctorCode        string     `db:"doctor_code" json:"doctor_code"`
	FirstName         string     `db:"first_name" json:"first_name"`
	LastName          string     `db:"last_name" json:"last_name"`
	Email             string     `db:"email" json:"email"`
	Phone             *string    `db:"phone" json:"phone,omitempty"`
	Specialization    *string    `db:"specialization" json:"specialization,omitempty"`
	LicenseNumber     string     `db:"license_number" json:"license_number"`
	YearsOfExperience int        `db:"years_of_experience" json:"years_of_experience"`
	Qualification     *string    `db:"qualification" json:"qualification,omitempty"`
	IsActive          bool       `db:"is_active" json:"is_active"`
}
