package vitals

import (
	"context"
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

const vitalsCols = `id, visit_id, recorded_by_doctor_id, recorded_at,
	temperature, blood_pressure_systolic, blood_pressure_diastolic,
	heart_rate, respiratory_rate, oxygen_saturation,
	weight_kg, height_cm, bmi, notes`

func (r *repoPG) Create(ctx context.Context, v *VitalSigns) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.RecordedAt.IsZero() {
		v.RecordedAt = time.Now().UTC()
	}
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO vital_signs (`+vitalsCols+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		v.ID, v.VisitID, v.RecordedByDoctorID, v.RecordedAt,
		v.Temperature, v.BloodPressureSystolic, v.BloodPressureDiastolic,
		v.HeartRate, v.RespiratoryRate, v.OxygenSaturation,
		v.WeightKg, v.HeightCm, v.BMI, v.Notes)
	return err
}

func (r *repoPG) ListByVisit(ctx context.Context, visitID uuid.UUID) ([]*VitalSigns, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+vitalsCols+` FROM vital_signs WHERE visit_id = $1 ORDER BY recorded_at`, visitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var readings []*VitalSigns
	for rows.Next() {
		var v VitalSigns
		if err := rows.Scan(
			&v.ID, &v.VisitID, &v.RecordedByDoctorID, &v.RecordedAt,
			&v.Temperature, &v.BloodPressureSystolic, &v.BloodPressureDiastolic,
			&v.HeartRate, &v.RespiratoryRate, &v.OxygenSaturation,
			&v.WeightKg, &v.HeightCm, &v.BMI, &v.Notes,
		); err != nil {
			return nil, err
		}
		readings = append(readings, &v)
	}
	return readings, rows.Err()
}
