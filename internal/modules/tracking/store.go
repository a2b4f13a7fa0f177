package tracking

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shipline/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Record, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, current_location, status, progress_percentage, updated_at
		FROM order_tracking
		WHERE id = $1`, string(id),
	)

	var rec Record
	err := row.Scan(&rec.OrderID, &rec.Location, &rec.Status, &rec.Progress, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update persists a progression step. The guard keeps a step that lost the
// race against cancel/return from resurrecting a closed record; the miss
// surfaces as ErrNotFound and the stepper stops.
func (s *Store) Update(ctx context.Context, rec *Record) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE order_tracking
		SET current_location = $1,
		    status = $2,
		    progress_percentage = $3,
		    updated_at = $4
		WHERE id = $5 AND status NOT IN ('cancelled', 'returned')`,
		rec.Location,
		string(rec.Status),
		rec.Progress,
		rec.UpdatedAt,
		string(rec.OrderID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return ErrNotFound
	}
	return nil
}
