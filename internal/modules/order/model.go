package order

import (
	"errors"
	"time"

	"shipline/internal/modules/tracking"
	"shipline/internal/types"
)

var (
	ErrNotFound     = errors.New("order not found")
	ErrInvalidState = errors.New("invalid order state")
	ErrConflict     = errors.New("order state conflict")
	ErrBadRequest   = errors.New("bad request")
)

// Order is a purchase with its shipment details. The two flags are the only
// fields mutated after creation, and never both: cancellation closes the
// order before the first advance, return closes it after delivery.
type Order struct {
	ID          types.ID
	ProductID   *types.ID
	Product     string
	Description *string
	FullName    string
	Phone       string
	Quantity    int
	Email       *string
	Address     string
	City        string
	State       string
	Country     string
	PinCode     string
	Price       float64
	IsCancelled bool
	IsReturned  bool
	CreatedAt   time.Time
}

type TransitionKind string

const (
	KindCancel TransitionKind = "cancel"
	KindReturn TransitionKind = "return"
)

// Reason is an append-only audit entry for a terminal transition. Idempotent
// re-cancel/re-return reads the latest one back.
type Reason struct {
	ID        types.ID
	OrderID   types.ID
	Kind      TransitionKind
	Reason    string
	CreatedAt time.Time
}

// CanCancel: the cancellation window closes as soon as progression leaves
// the first waypoint.
func CanCancel(st tracking.Status) bool {
	return st == tracking.StatusOrderPlaced
}

// CanReturn: returns are accepted only while the shipment sits at delivered.
func CanReturn(st tracking.Status) bool {
	return st == tracking.StatusDelivered
}
