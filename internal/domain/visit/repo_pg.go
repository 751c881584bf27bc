package visit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/curanet/curanet/internal/platform/db"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func (r *repoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const visitCols = `id, visit_number, patient_id, hospital_id, department_id, primary_doctor_id,
	current_status_id, visit_type, priority_level, admission_date, discharge_date,
	chief_complaint, diagnosis, treatment_plan, notes,
	estimated_duration_hours, insurance_info, is_active, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, v *PatientVisit) error {
	v.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO patient_visits (
			id, visit_number, patient_id, hospital_id, department_id, primary_doctor_id,
			current_status_id, visit_type, priority_level, admission_date,
			chief_complaint, diagnosis, treatment_plan, notes,
			estimated_duration_hours, insurance_info
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16
		)`,
		v.ID, v.VisitNumber, v.PatientID, v.HospitalID, v.DepartmentID, v.PrimaryDoctorID,
		v.CurrentStatusID, v.VisitType, v.PriorityLevel, v.AdmissionDate,
		v.ChiefComplaint, v.Diagnosis, v.TreatmentPlan, v.Notes,
		v.EstimatedDurationHours, v.InsuranceInfo,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*PatientVisit, error) {
	v, err := scanVisit(r.conn(ctx).QueryRow(ctx,
		`SELECT `+visitCols+` FROM patient_visits WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *repoPG) FindActive(ctx context.Context, filter ActiveFilter) ([]*PatientVisit, error) {
	query := `SELECT ` + visitCols + ` FROM patient_visits
		WHERE is_active AND discharge_date IS NULL`
	var args []interface{}
	idx := 1
	if filter.HospitalID != nil {
		query += fmt.Sprintf(" AND hospital_id = $%d", idx)
		args = append(args, *filter.HospitalID)
		idx++
	}
	if filter.DoctorID != nil {
		query += fmt.Sprintf(" AND primary_doctor_id = $%d", idx)
		args = append(args, *filter.DoctorID)
		idx++
	}
	if filter.StatusID != nil {
		query += fmt.Sprintf(" AND current_status_id = $%d", idx)
		args = append(args, *filter.StatusID)
		idx++
	}
	query += " ORDER BY admission_date"

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visits []*PatientVisit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, err
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

func (r *repoPG) SetStatus(ctx context.Context, id, statusID uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE patient_visits SET current_status_id = $2, updated_at = NOW() WHERE id = $1`,
		id, statusID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Discharge(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE patient_visits SET discharge_date = $2, updated_at = NOW()
		 WHERE id = $1 AND discharge_date IS NULL`,
		id, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) AddStatusHistory(ctx context.Context, h *StatusHistory) error {
	h.ID = uuid.New()
	if h.ChangedAt.IsZero() {
		h.ChangedAt = time.Now().UTC()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO visit_status_history (id, visit_id, old_status_id, new_status_id, changed_by_doctor_id, reason, changed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		h.ID, h.VisitID, h.OldStatusID, h.NewStatusID, h.ChangedByDoctorID, h.Reason, h.ChangedAt,
	)
	return err
}

func (r *repoPG) ListStatusHistory(ctx context.Context, visitID uuid.UUID) ([]*StatusHistory, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, visit_id, old_status_id, new_status_id, changed_by_doctor_id, reason, changed_at
		FROM visit_status_history WHERE visit_id = $1 ORDER BY changed_at`, visitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []*StatusHistory
	for rows.Next() {
		var h StatusHistory
		if err := rows.Scan(&h.ID, &h.VisitID, &h.OldStatusID, &h.NewStatusID,
			&h.ChangedByDoctorID, &h.Reason, &h.ChangedAt); err != nil {
			return nil, err
		}
		history = append(history, &h)
	}
	return history, rows.Err()
}

func scanVisit(row pgx.Row) (*PatientVisit, error) {
	var v PatientVisit
	err := row.Scan(
		&v.ID, &v.VisitNumber, &v.PatientID, &v.HospitalID, &v.DepartmentID, &v.PrimaryDoctorID,
		&v.CurrentStatusID, &v.VisitType, &v.PriorityLevel, &v.AdmissionDate, &v.DischargeDate,
		&v.ChiefComplaint, &v.Diagnosis, &v.TreatmentPlan, &v.Notes,
		&v.EstimatedDurationHours, &v.InsuranceInfo, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
