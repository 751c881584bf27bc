package visit

import (
	"time"

	"github.com/google/uuid"
)

// VisitType is a closed set; unknown values are rejected at the service
// boundary.
type VisitType string

const (
	VisitOutpatient VisitType = "Outpatient"
	VisitInpatient  VisitType = "Inpatient"
	VisitEmergency  VisitType = "Emergency"
	VisitFollowUp   VisitType = "Follow-up"
)

func (t VisitType) Valid() bool {
	switch t {
	case VisitOutpatient, VisitInpatient, VisitEmergency, VisitFollowUp:
		return true
	}
	return false
}

// PriorityLevel is a closed set ranked for triage ordering.
type PriorityLevel string

const (
	PriorityLow      PriorityLevel = "Low"
	PriorityNormal   PriorityLevel = "Normal"
	PriorityHigh     PriorityLevel = "High"
	PriorityCritical PriorityLevel = "Critical"
)

func (p PriorityLevel) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Rank orders priorities for worklists: higher is more urgent.
func (p PriorityLevel) Rank() int {
	switch p {
	case PriorityCritical:
		return 3
	case PriorityHigh:
		return 2
	case PriorityNormal:
		return 1
	default:
		return 0
	}
}

// PatientVisit maps to the patient_visits table. A visit holds exactly one
// current status at a time; the status must reference an active catalog
// entry. patient_id, hospital_id, and primary_doctor_id are fixed at
// creation and never reassigned by the transition path.
type PatientVisit struct {
	ID                     uuid.UUID     `db:"id" json:"id"`
	VisitNumber            string        `db:"visit_number" json:"visit_number"`
	PatientID              uuid.UUID     `db:"patient_id" json:"patient_id"`
	HospitalID             uuid.UUID     `db:"hospital_id" json:"hospital_id"`
	DepartmentID           *uuid.UUID    `db:"department_id" json:"department_id,omitempty"`
	PrimaryDoctorID        uuid.UUID     `db:"primary_doctor_id" json:"primary_doctor_id"`
	CurrentStatusID        uuid.UUID     `db:"current_status_id" json:"current_status_id"`
	VisitType              VisitType     `db:"visit_type" json:"visit_type"`
	PriorityLevel          PriorityLevel `db:"priority_level" json:"priority_level"`
	AdmissionDate          time.Time     `db:"admission_date" json:"admission_date"`
	DischargeDate          *time.Time    `db:"discharge_date" json:"discharge_date,omitempty"`
	ChiefComplaint         *string       `db:"chief_complaint" json:"chief_complaint,omitempty"`
	Diagnosis              *string       `db:"diagnosis" json:"diagnosis,omitempty"`
	TreatmentPlan          *string       `db:"treatment_plan" json:"treatment_plan,omitempty"`
	Notes                  *string       `db:"notes" json:"notes,omitempty"`
	EstimatedDurationHours *int          `db:"estimated_duration_hours" json:"estimated_duration_hours,omitempty"`
	InsuranceInfo          *string       `db:"insurance_info" json:"insurance_info,omitempty"`
	IsActive               bool          `db:"is_active" json:"is_active"`
	CreatedAt              time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time     `db:"updated_at" json:"updated_at"`
}

// OnBoard reports whether the visit appears in active views: is_active set
// and not yet discharged. A discharge removes the visit from the board even
// when is_active is still true.
func (v *PatientVisit) OnBoard() bool {
	return v.IsActive && v.DischargeDate == nil
}

// TransitionResult is the before/after pair returned by a status transition.
type TransitionResult struct {
	VisitID     uuid.UUID `json:"visit_id"`
	OldStatusID uuid.UUID `json:"old_status_id"`
	NewStatusID uuid.UUID `json:"new_status_id"`
}

// StatusHistory maps to the visit_status_history table: an append-only audit
// trail written in the same transaction as the status update.
type StatusHistory struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	VisitID           uuid.UUID  `db:"visit_id" json:"visit_id"`
	OldStatusID       uuid.UUID  `db:"old_status_id" json:"old_status_id"`
	NewStatusID       uuid.UUID  `db:"new_status_id" json:"new_status_id"`
	ChangedByDoctorID *uuid.UUID `db:"changed_by_doctor_id" json:"changed_by_doctor_id,omitempty"`
	Reason            *string    `db:"reason" json:"reason,omitempty"`
	ChangedAt         time.Time  `db:"changed_at" json:"changed_at"`
}

// ActiveFilter constrains FindActive. Nil fields are not applied.
type ActiveFilter struct {
	HospitalID *uuid.UUID
	DoctorID   *uuid.UUID
	StatusID   *uuid.UUID
}
