package catalog

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

const categoryCols = `id, category_name, category_order, color_code, description, is_active`

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*StatusCategory, error) {
	row := r.conn(ctx).QueryRow(ctx,
		`SELECT `+categoryCols+` FROM status_categories WHERE id = $1`, id)

	var sc StatusCategory
	err := row.Scan(&sc.ID, &sc.CategoryName, &sc.CategoryOrder, &sc.ColorCode, &sc.Description, &sc.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

func (r *repoPG) ListActive(ctx context.Context) ([]*StatusCategory, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+categoryCols+` FROM status_categories WHERE is_active ORDER BY category_order`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []*StatusCategory
	for rows.Next() {
		var sc StatusCategory
		if err := rows.Scan(&sc.ID, &sc.CategoryName, &sc.CategoryOrder, &sc.ColorCode, &sc.Description, &sc.IsActive); err != nil {
			return nil, err
		}
		cats = append(cats, &sc)
	}
	return cats, rows.Err()
}
