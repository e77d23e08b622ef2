package auditlog

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Append(ctx context.Context, e *Entry) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO audit_log (user_id, action, details)
		VALUES ($1, $2, $3)
		RETURNING id, timestamp`,
		e.UserID, e.Action, e.Details,
	).Scan(&e.ID, &e.Timestamp)
}

func (r *repoPG) List(ctx context.Context, action string, limit, offset int) ([]*Entry, int64, error) {
	var (
		total int64
		rows  pgx.Rows
		err   error
	)
	if action == "" {
		if err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM audit_log`).Scan(&total); err != nil {
			return nil, 0, err
		}
		rows, err = r.pool.Query(ctx, `
			SELECT id, user_id, action, details, timestamp
			FROM audit_log
			ORDER BY timestamp DESC, id DESC
			LIMIT $1 OFFSET $2`, limit, offset)
	} else {
		if err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM audit_log WHERE action = $1`, action).Scan(&total); err != nil {
			return nil, 0, err
		}
		rows, err = r.pool.Query(ctx, `
			SELECT id, user_id, action, details, timestamp
			FROM audit_log
			WHERE action = $1
			ORDER BY timestamp DESC, id DESC
			LIMIT $2 OFFSET $3`, action, limit, offset)
	}
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.Details, &e.Timestamp); err != nil {
			return nil, 0, err
		}
		items = append(items, &e)
	}
	return items, total, rows.Err()
}
