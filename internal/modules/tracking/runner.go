package tracking

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"shipline/internal/types"
)

// Runner walks one order's tracking record through Route. Each order gets a
// single fire-and-forget run, triggered at order creation; there is no handle
// to stop it, so termination is driven entirely by the state checks at the
// top of each step.
type Runner struct {
	ctx     context.Context
	orders  Orders
	records Records
	delay   time.Duration
	log     zerolog.Logger
}

// NewRunner builds a runner whose spawned steps live under ctx (normally the
// process signal context) and pause delay between waypoints.
func NewRunner(ctx context.Context, orders Orders, records Records, delay time.Duration, log zerolog.Logger) *Runner {
	return &Runner{ctx: ctx, orders: orders, records: records, delay: delay, log: log}
}

// Start schedules progression for an order and returns immediately.
func (r *Runner) Start(id types.ID) {
	go r.Run(r.ctx, id)
}

// Run executes the full progression sequence synchronously. Every step
// re-fetches order and record before writing; any failure or terminal flag
// stops the walk without surfacing an error (callers poll the record to
// detect stalls).
func (r *Runner) Run(ctx context.Context, id types.ID) {
	for i := range Route {
		st, err := r.orders.State(ctx, id)
		if err != nil {
			r.log.Warn().Err(err).Str("order_id", string(id)).Msg("tracking step aborted: order lookup failed")
			return
		}
		if st.Closed() {
			r.log.Debug().Str("order_id", string(id)).Msg("tracking halted: order closed or gone")
			return
		}

		rec, err := r.records.Get(ctx, id)
		if err != nil {
			r.log.Warn().Err(err).Str("order_id", string(id)).Msg("tracking step aborted: record lookup failed")
			return
		}

		rec.Location = Route[i]
		rec.Status = StatusAt(i)
		rec.Progress = ProgressAt(i)
		rec.UpdatedAt = time.Now().UTC()
		if err := r.records.Update(ctx, rec); err != nil {
			r.log.Warn().Err(err).Str("order_id", string(id)).Msg("tracking step aborted: update failed")
			return
		}

		if i == len(Route)-1 {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(r.delay):
		}
	}
}
