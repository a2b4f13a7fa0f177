package tracking

import (
	"context"
	"time"

	"shipline/internal/types"
)

// View is what /track exposes: the stored record plus the computed next
// waypoint (nil once the final waypoint is reached).
type View struct {
	OrderID      types.ID
	Location     string
	Status       Status
	Progress     int
	UpdatedAt    time.Time
	NextLocation *string
}

type Service struct {
	records Records
	orders  Orders
}

func NewService(records Records, orders Orders) *Service {
	return &Service{records: records, orders: orders}
}

// Track returns the tracking view for an order. Views are suppressed once
// the order is cancelled or returned, even though the record keeps its last
// values.
func (s *Service) Track(ctx context.Context, id types.ID) (*View, error) {
	rec, err := s.records.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	st, err := s.orders.State(ctx, id)
	if err != nil {
		return nil, err
	}
	if st.Exists && (st.Cancelled || st.Returned) {
		return nil, ErrNotTrackable
	}

	return &View{
		OrderID:      rec.OrderID,
		Location:     rec.Location,
		Status:       rec.Status,
		Progress:     rec.Progress,
		UpdatedAt:    rec.UpdatedAt,
		NextLocation: Next(rec.Location),
	}, nil
}
