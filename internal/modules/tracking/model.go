package tracking

import (
	"context"
	"errors"
	"time"

	"shipline/internal/types"
)

type Status string

const (
	StatusOrderPlaced Status = "order_placed"
	StatusInTransit   Status = "in_transit"
	StatusDelivered   Status = "delivered"
	StatusCancelled   Status = "cancelled"
	StatusReturned    Status = "returned"
)

var (
	ErrNotFound     = errors.New("tracking record not found")
	ErrNotTrackable = errors.New("order is cancelled or returned and is not trackable")
)

// Record is the 1:1 tracking row for an order. Location is always a member
// of Route while the stepper owns the record.
type Record struct {
	OrderID   types.ID
	Location  string
	Status    Status
	Progress  int
	UpdatedAt time.Time
}

// NewRecord returns the initial record an order starts with: first waypoint,
// order_placed, zero progress.
func NewRecord(orderID types.ID, now time.Time) *Record {
	return &Record{
		OrderID:   orderID,
		Location:  Route[0],
		Status:    StatusOrderPlaced,
		Progress:  0,
		UpdatedAt: now,
	}
}

// OrderState is the slice of order state this package observes. The stepper
// and the query service gate on it; neither ever writes the order back.
type OrderState struct {
	Exists    bool
	Cancelled bool
	Returned  bool
}

// Closed reports whether the order has reached a terminal flag (or is gone)
// and progression must halt.
func (s OrderState) Closed() bool {
	return !s.Exists || s.Cancelled || s.Returned
}

// Orders is implemented by the order store.
type Orders interface {
	State(ctx context.Context, id types.ID) (OrderState, error)
}

// Records is the tracking persistence surface the runner and query need.
// *Store satisfies it; tests substitute an in-memory map.
type Records interface {
	Get(ctx context.Context, id types.ID) (*Record, error)
	Update(ctx context.Context, rec *Record) error
}
