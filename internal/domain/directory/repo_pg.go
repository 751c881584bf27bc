package directory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/curanet/curanet/internal/platform/db"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Lookup {
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

const hospitalCols = `id, hospital_name, hospital_code, address, phone, email, license_number, is_active, created_at`

func (r *repoPG) ListHospitals(ctx context.Context) ([]*Hospital, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+hospitalCols+` FROM hospitals WHERE is_active ORDER BY hospital_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hospitals []*Hospital
	for rows.Next() {
		var h Hospital
		if err := rows.Scan(&h.ID, &h.HospitalName, &h.HospitalCode, &h.Address, &h.Phone,
			&h.Email, &h.LicenseNumber, &h.IsActive, &h.CreatedAt); err != nil {
			return nil, err
		}
		hospitals = append(hospitals, &h)
	}
	return hospitals, rows.Err()
}

func (r *repoPG) GetHospital(ctx context.Context, id uuid.UUID) (*Hospital, error) {
	var h Hospital
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT `+hospitalCols+` FROM hospitals WHERE id = $1`, id).
		Scan(&h.ID, &h.HospitalName, &h.HospitalCode, &h.Address, &h.Phone,
			&h.Email, &h.LicenseNumber, &h.IsActive, &h.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

const doctorCols = `id, hospital_id, department_id, doctor_code, first_name, last_name, email,
	phone, specialization, license_number, years_of_experience, qualification, is_active`

func (r *repoPG) ListDoctors(ctx context.Context, hospitalID *uuid.UUID) ([]*Doctor, error) {
	query := `SELECT ` + doctorCols + ` FROM doctors WHERE is_active`
	var args []interface{}
	if hospitalID != nil {
		query += ` AND hospital_id = $1`
		args = append(args, *hospitalID)
	}
	query += ` ORDER BY last_name, first_name`

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var doctors []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		doctors = append(doctors, d)
	}
	return doctors, rows.Err()
}

func (r *repoPG) GetDoctor(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	d, err := scanDoctor(r.conn(ctx).QueryRow(ctx,
		`SELECT `+doctorCols+` FROM doctors WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *repoPG) ListDepartments(ctx context.Context, hospitalID uuid.UUID) ([]*Department, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT id, hospital_id, department_name, department_code, head_doctor_id, is_active
		FROM departments WHERE hospital_id = $1 AND is_active
		ORDER BY department_name`, hospitalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*Department
	for rows.Next() {
		var d Department
		if err := rows.Scan(&d.ID, &d.HospitalID, &d.DepartmentName, &d.DepartmentCode,
			&d.HeadDoctorID, &d.IsActive); err != nil {
			return nil, err
		}
		departments = append(departments, &d)
	}
	return departments, rows.Err()
}

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(
		&d.ID, &d.HospitalID, &d.DepartmentID, &d.DoctorCode, &d.FirstName, &d.LastName, &d.Email,
		&d.Phone, &d.Specialization, &d.LicenseNumber, &d.YearsOfExperience, &d.Qualification, &d.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
