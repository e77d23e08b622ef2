package availability

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Upsert(ctx context.Context, a *Availability) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO availability (doctor_id, date, slots)
		VALUES ($1, $2, $3)
		ON CONFLICT (doctor_id, date)
		DO UPDATE SET slots = EXCLUDED.slots, updated_at = NOW()
		RETURNING id, created_at, updated_at`,
		a.DoctorID, a.Date, a.Slots,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *repoPG) ListByDoctor(ctx context.Context, doctorID int64) ([]*Availability, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, doctor_id, date, slots, created_at, updated_at
		FROM availability
		WHERE doctor_id = $1
		ORDER BY date`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Availability
	for rows.Next() {
		var a Availability
		if err := rows.Scan(&a.ID, &a.DoctorID, &a.Date, &a.Slots, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, &a)
	}
	return items, rows.Err()
}

func (r *repoPG) GetByDoctorDate(ctx context.Context, doctorID int64, date string) (*Availability, error) {
	var a Availability
	err := r.pool.QueryRow(ctx, `
		SELECT id, doctor_id, date, slots, created_at, updated_at
		FROM availability
		WHERE doctor_id = $1 AND date = $2`, doctorID, date,
	).Scan(&a.ID, &a.DoctorID, &a.Date, &a.Slots, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
