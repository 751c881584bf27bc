package board

import (
	"time"

	"github.com/google/uuid"

	"github.com/curanet/curanet/internal/domain/visit"
)

// VisitSummary is one row of the denormalized board views: a visit joined
// with its patient, status category, hospital and assigned doctor.
type VisitSummary struct {
	VisitID        uuid.UUID           `json:"visit_id"`
	VisitNumber    string              `json:"visit_number"`
	PatientID      uuid.UUID           `json:"patient_id"`
	PatientCode    string              `json:"patient_code"`
	PatientName    string              `json:"patient_name"`
	PatientPhone   *string             `json:"patient_phone,omitempty"`
	StatusID       uuid.UUID           `json:"status_id"`
	StatusName     string              `json:"status_name"`
	StatusColor    *string             `json:"status_color,omitempty"`
	StatusOrder    int                 `json:"-"`
	HospitalName   string              `json:"hospital_name"`
	DoctorID       uuid.UUID           `json:"doctor_id"`
	DoctorName     string              `json:"doctor_name"`
	VisitType      visit.VisitType     `json:"visit_type"`
	PriorityLevel  visit.PriorityLevel `json:"priority_level"`
	AdmissionDate  time.Time           `json:"admission_date"`
	ChiefComplaint *string             `json:"chief_complaint,omitempty"`
}

// Column is one Kanban lane: a status category plus every on-board visit
// currently in it. Categories with no visits produce no Column.
type Column struct {
	StatusID      uuid.UUID       `json:"status_id"`
	CategoryName  string          `json:"category_name"`
	CategoryOrder int             `json:"category_order"`
	ColorCode     *string         `json:"color_code,omitempty"`
	Visits        []*VisitSummary `json:"visits"`
}
