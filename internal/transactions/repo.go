package transactions

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is what the handlers need from persistence. *Repo is the Postgres
// implementation; tests substitute an in-memory fake.
type Store interface {
	Insert(ctx context.Context, tx Transaction) error
	ListBySession(ctx context.Context, sessionID string) ([]Transaction, error)
	GetByID(ctx context.Context, sessionID, id string) (*Transaction, error)
	SumBySession(ctx context.Context, sessionID string) (float64, error)
}

type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

func (r *Repo) Insert(ctx context.Context, tx Transaction) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO transactions (id, title, amount, session_id)
		 VALUES ($1::uuid, $2, $3, $4::uuid)`,
		tx.ID, tx.Title, tx.Amount, tx.SessionID,
	)
	return err
}

func (r *Repo) ListBySession(ctx context.Context, sessionID string) ([]Transaction, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT id::text, title, amount::float8, session_id::text, created_at
		 FROM transactions
		 WHERE session_id = $1::uuid
		 ORDER BY created_at`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Transaction, 0)
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.Title, &t.Amount, &t.SessionID, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetByID returns nil when no row matches both the session and the id. A row
// owned by another session is indistinguishable from a missing one.
func (r *Repo) GetByID(ctx context.Context, sessionID, id string) (*Transaction, error) {
	var t Transaction
	err := r.Pool.QueryRow(ctx,
		`SELECT id::text, title, amount::float8, session_id::text, created_at
		 FROM transactions
		 WHERE session_id = $1::uuid AND id = $2::uuid`,
		sessionID, id,
	).Scan(&t.ID, &t.Title, &t.Amount, &t.SessionID, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repo) SumBySession(ctx context.Context, sessionID string) (float64, error) {
	var sum float64
	err := r.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0)::float8
		 FROM transactions
		 WHERE session_id = $1::uuid`,
		sessionID,
	).Scan(&sum)
	if err != nil {
		return 0, err
	}
	return sum, nil
}
