package order

import (
	"context"
	"time"

	"shipline/internal/modules/tracking"
	"shipline/internal/types"
)

// Products reserves catalog stock for a purchase. Implemented by the product
// service; nil when orders are taken without a catalog reference.
type Products interface {
	Reserve(ctx context.Context, id types.ID, qty int) error
}

// Tracker schedules background progression for a freshly created order.
// Implemented by tracking.Runner.
type Tracker interface {
	Start(id types.ID)
}

type Service struct {
	store    *Store
	products Products
	tracker  Tracker
}

func NewService(store *Store, products Products, tracker Tracker) *Service {
	return &Service{store: store, products: products, tracker: tracker}
}

type InitiateCommand struct {
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
}

type CancelCommand struct {
	OrderID types.ID
	Reason  string
}

type ReturnCommand struct {
	OrderID types.ID
	Reason  string
}

// Result is what cancel/return report back: the flags after the operation
// and the reason on file.
type Result struct {
	OrderID   types.ID
	Cancelled bool
	Returned  bool
	Reason    string
}

// Initiate creates the order together with its tracking record and hands the
// order id to the background stepper. The stepper runs outside this request.
func (s *Service) Initiate(ctx context.Context, cmd InitiateCommand) (*Order, error) {
	if cmd.Product == "" || cmd.FullName == "" || cmd.Phone == "" || cmd.Address == "" {
		return nil, ErrBadRequest
	}
	if cmd.Quantity <= 0 {
		return nil, ErrBadRequest
	}

	if cmd.ProductID != nil && s.products != nil {
		if err := s.products.Reserve(ctx, *cmd.ProductID, cmd.Quantity); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	o := &Order{
		ID:          types.NewID(),
		ProductID:   cmd.ProductID,
		Product:     cmd.Product,
		Description: cmd.Description,
		FullName:    cmd.FullName,
		Phone:       cmd.Phone,
		Quantity:    cmd.Quantity,
		Email:       cmd.Email,
		Address:     cmd.Address,
		City:        cmd.City,
		State:       cmd.State,
		Country:     cmd.Country,
		PinCode:     cmd.PinCode,
		Price:       cmd.Price,
		CreatedAt:   now,
	}

	if err := s.store.CreateWithTracking(ctx, o, tracking.NewRecord(o.ID, now)); err != nil {
		return nil, err
	}

	if s.tracker != nil {
		s.tracker.Start(o.ID)
	}
	return o, nil
}

// Cancel closes an order before progression leaves the first waypoint.
// Cancelling an already-cancelled order is an idempotent read of the
// recorded reason.
func (s *Service) Cancel(ctx context.Context, cmd CancelCommand) (*Result, error) {
	o, err := s.store.Get(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}
	if o.IsCancelled {
		return s.existingResult(ctx, o, KindCancel)
	}

	st, err := s.store.TrackingStatus(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	if !CanCancel(st) {
		return nil, ErrInvalidState
	}

	r := &Reason{
		ID:        types.NewID(),
		OrderID:   o.ID,
		Kind:      KindCancel,
		Reason:    cmd.Reason,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.ApplyCancel(ctx, r); err != nil {
		return nil, err
	}
	return &Result{OrderID: o.ID, Cancelled: true, Returned: false, Reason: r.Reason}, nil
}

// Return closes a delivered order. Mutually exclusive with cancellation;
// re-returning is an idempotent read.
func (s *Service) Return(ctx context.Context, cmd ReturnCommand) (*Result, error) {
	o, err := s.store.Get(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}
	if o.IsCancelled {
		return nil, ErrInvalidState
	}
	if o.IsReturned {
		return s.existingResult(ctx, o, KindReturn)
	}

	st, err := s.store.TrackingStatus(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	if !CanReturn(st) {
		return nil, ErrInvalidState
	}

	r := &Reason{
		ID:        types.NewID(),
		OrderID:   o.ID,
		Kind:      KindReturn,
		Reason:    cmd.Reason,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.ApplyReturn(ctx, r); err != nil {
		return nil, err
	}
	return &Result{OrderID: o.ID, Cancelled: false, Returned: true, Reason: r.Reason}, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Order, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]*Order, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return s.store.List(ctx, skip, limit)
}

func (s *Service) FindByPhone(ctx context.Context, phone string) ([]*Order, error) {
	if phone == "" {
		return nil, ErrBadRequest
	}
	return s.store.FindByPhone(ctx, phone)
}

func (s *Service) existingResult(ctx context.Context, o *Order, kind TransitionKind) (*Result, error) {
	res := &Result{OrderID: o.ID, Cancelled: o.IsCancelled, Returned: o.IsReturned}
	r, err := s.store.LatestReason(ctx, o.ID, kind)
	if err != nil {
		return nil, err
	}
	if r != nil {
		res.Reason = r.Reason
	}
	return res, nil
}
