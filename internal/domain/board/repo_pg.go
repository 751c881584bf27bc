package board

import (
	"context"

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

const summarySelect = `
	SELECT v.id, v.visit_number,
	       p.id, p.patient_code, p.first_name || ' ' || p.last_name, p.phone,
	       sc.id, sc.category_name, sc.color_code, sc.category_order,
	       h.hospital_name,
	       d.id, d.first_name || ' ' || d.last_name,
	       v.visit_type, v.priority_level, v.admission_date, v.chief_complaint
	FROM patient_visits v
	JOIN patients p ON p.id = v.patient_id
	JOIN status_categories sc ON sc.id = v.current_status_id
	JOIN hospitals h ON h.id = v.hospital_id
	JOIN doctors d ON d.id = v.primary_doctor_id
	WHERE v.is_active AND v.discharge_date IS NULL`

func (r *repoPG) ActiveSummaries(ctx context.Context) ([]*VisitSummary, error) {
	rows, err := r.conn(ctx).Query(ctx, summarySelect+` ORDER BY v.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSummaries(rows)
}

func (r *repoPG) DoctorSummaries(ctx context.Context, doctorID uuid.UUID) ([]*VisitSummary, error) {
	rows, err := r.conn(ctx).Query(ctx,
		summarySelect+` AND v.primary_doctor_id = $1 ORDER BY v.admission_date`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSummaries(rows)
}

func collectSummaries(rows pgx.Rows) ([]*VisitSummary, error) {
	var summaries []*VisitSummary
	for rows.Next() {
		var s VisitSummary
		if err := rows.Scan(
			&s.VisitID, &s.VisitNumber,
			&s.PatientID, &s.PatientCode, &s.PatientName, &s.PatientPhone,
			&s.StatusID, &s.StatusName, &s.StatusColor, &s.StatusOrder,
			&s.HospitalName, &s.DoctorID, &s.DoctorName,
			&s.VisitType, &s.PriorityLevel, &s.AdmissionDate, &s.ChiefComplaint,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, &s)
	}
	return summaries, rows.Err()
}
