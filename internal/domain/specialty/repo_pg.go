package specialty

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) List(ctx context.Context) ([]*Specialty, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM specialties ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSpecialties(rows)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Specialty, error) {
	var s Specialty
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM specialties WHERE id = $1`, id).
		Scan(&s.ID, &s.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SetForDoctor is delete-then-insert inside one transaction so concurrent
// writers cannot leave a mixed set.
func (r *repoPG) SetForDoctor(ctx context.Context, doctorID int64, specialtyIDs []int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM doctor_specialties WHERE doctor_id = $1`, doctorID); err != nil {
		return err
	}
	for _, sid := range specialtyIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO doctor_specialties (doctor_id, specialty_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`, doctorID, sid); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *repoPG) ListForDoctor(ctx context.Context, doctorID int64) ([]*Specialty, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.id, s.name
		FROM specialties s
		JOIN doctor_specialties ds ON ds.specialty_id = s.id
		WHERE ds.doctor_id = $1
		ORDER BY s.name`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSpecialties(rows)
}

func (r *repoPG) DoctorsBySpecialty(ctx context.Context, specialtyID int64) ([]*Doctor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.id, u.name, u.email
		FROM users u
		JOIN doctor_specialties ds ON ds.doctor_id = u.id
		WHERE ds.specialty_id = $1
		ORDER BY u.name`, specialtyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Doctor
	for rows.Next() {
		var d Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Email); err != nil {
			return nil, err
		}
		items = append(items, &d)
	}
	return items, rows.Err()
}

func collectSpecialties(rows pgx.Rows) ([]*Specialty, error) {
	var items []*Specialty
	for rows.Next() {
		var s Specialty
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}
