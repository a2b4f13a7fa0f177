package order

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shipline/internal/modules/tracking"
	"shipline/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const orderColumns = `
	id, product_id, product, description, full_name, phone, quantity, email,
	address, city, state, country, pin_code, price,
	is_cancelled, is_returned, created_at`

// CreateWithTracking inserts the order and its initial tracking record
// atomically; the pair always exists together.
func (s *Store) CreateWithTracking(ctx context.Context, o *Order, rec *tracking.Record) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO product_orders (
			id, product_id, product, description, full_name, phone, quantity, email,
			address, city, state, country, pin_code, price,
			is_cancelled, is_returned, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14,
			$15, $16, $17
		)`,
		string(o.ID),
		toStringPtr(o.ProductID),
		o.Product,
		o.Description,
		o.FullName,
		o.Phone,
		o.Quantity,
		o.Email,
		o.Address, o.City, o.State, o.Country, o.PinCode,
		o.Price,
		o.IsCancelled, o.IsReturned,
		o.CreatedAt,
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO order_tracking (id, current_location, status, progress_percentage, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		string(rec.OrderID),
		rec.Location,
		string(rec.Status),
		rec.Progress,
		rec.UpdatedAt,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Order, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+orderColumns+`
		FROM product_orders
		WHERE id = $1`, string(id),
	)
	return scanOrder(row)
}

func (s *Store) List(ctx context.Context, skip, limit int) ([]*Order, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+orderColumns+`
		FROM product_orders
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2`, skip, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (s *Store) FindByPhone(ctx context.Context, phone string) ([]*Order, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+orderColumns+`
		FROM product_orders
		WHERE phone = $1
		ORDER BY created_at DESC`, phone,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

// State implements tracking.Orders. A missing order is not an error here;
// the stepper and the query service decide what absence means.
func (s *Store) State(ctx context.Context, id types.ID) (tracking.OrderState, error) {
	row := s.db.QueryRow(ctx, `
		SELECT is_cancelled, is_returned
		FROM product_orders
		WHERE id = $1`, string(id),
	)
	var st tracking.OrderState
	err := row.Scan(&st.Cancelled, &st.Returned)
	if errors.Is(err, pgx.ErrNoRows) {
		return tracking.OrderState{}, nil
	}
	if err != nil {
		return tracking.OrderState{}, err
	}
	st.Exists = true
	return st, nil
}

// TrackingStatus reads the status of the order's tracking row, ErrNotFound
// when the row is absent.
func (s *Store) TrackingStatus(ctx context.Context, id types.ID) (tracking.Status, error) {
	row := s.db.QueryRow(ctx, `
		SELECT status FROM order_tracking WHERE id = $1`, string(id),
	)
	var st string
	err := row.Scan(&st)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return tracking.Status(st), nil
}

// ApplyCancel flips the order and its tracking row to cancelled and appends
// the reason, all in one tx. Both updates are guarded so a progression step
// or a competing return landing in between makes the tx miss instead of
// clobbering state.
func (s *Store) ApplyCancel(ctx context.Context, r *Reason) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE order_tracking
		SET status = $1, progress_percentage = 0, updated_at = $2
		WHERE id = $3 AND status = $4`,
		string(tracking.StatusCancelled),
		r.CreatedAt,
		string(r.OrderID),
		string(tracking.StatusOrderPlaced),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return ErrInvalidState
	}

	tag, err = tx.Exec(ctx, `
		UPDATE product_orders
		SET is_cancelled = TRUE
		WHERE id = $1 AND is_returned = FALSE AND is_cancelled = FALSE`,
		string(r.OrderID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return ErrConflict
	}

	if err := appendReason(ctx, tx, r); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// ApplyReturn is the delivered-side counterpart of ApplyCancel. Progress is
// deliberately left at whatever value it held entering delivered.
func (s *Store) ApplyReturn(ctx context.Context, r *Reason) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE order_tracking
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4`,
		string(tracking.StatusReturned),
		r.CreatedAt,
		string(r.OrderID),
		string(tracking.StatusDelivered),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return ErrInvalidState
	}

	tag, err = tx.Exec(ctx, `
		UPDATE product_orders
		SET is_returned = TRUE
		WHERE id = $1 AND is_cancelled = FALSE AND is_returned = FALSE`,
		string(r.OrderID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return ErrConflict
	}

	if err := appendReason(ctx, tx, r); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func appendReason(ctx context.Context, tx pgx.Tx, r *Reason) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO order_reasons (id, order_id, kind, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		string(r.ID),
		string(r.OrderID),
		string(r.Kind),
		r.Reason,
		r.CreatedAt,
	)
	return err
}

// LatestReason returns the newest reason of a kind, nil when none was ever
// recorded.
func (s *Store) LatestReason(ctx context.Context, id types.ID, kind TransitionKind) (*Reason, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, order_id, kind, reason, created_at
		FROM order_reasons
		WHERE order_id = $1 AND kind = $2
		ORDER BY created_at DESC
		LIMIT 1`, string(id), string(kind),
	)
	var r Reason
	err := row.Scan(&r.ID, &r.OrderID, &r.Kind, &r.Reason, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	var productID, description, email sql.NullString

	err := row.Scan(
		&o.ID, &productID, &o.Product, &description, &o.FullName, &o.Phone, &o.Quantity, &email,
		&o.Address, &o.City, &o.State, &o.Country, &o.PinCode, &o.Price,
		&o.IsCancelled, &o.IsReturned, &o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if productID.Valid {
		p := types.ID(productID.String)
		o.ProductID = &p
	}
	if description.Valid {
		o.Description = &description.String
	}
	if email.Valid {
		o.Email = &email.String
	}
	return &o, nil
}

func scanOrders(rows pgx.Rows) ([]*Order, error) {
	out := []*Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func toStringPtr(id *types.ID) *string {
	if id == nil {
		return nil
	}
	v := string(*id)
	return &v
}
