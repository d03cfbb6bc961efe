package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"transit-ticketing/models"
)

// BulkResult summarises a BookMany run
type BulkResult struct {
	Attempts   int            `json:"attempts"`
	Succeeded  int            `json:"succeeded"`
	Failed     map[string]int `json:"failed"`
	Passengers int            `json:"passengers"`
	Capacity   int            `json:"capacity"`
}

// BookMany fires attempts concurrent bookings of descriptor for one
// passenger, at most workers at a time. However many run in parallel, the
// vehicle never ends up above capacity.
func (n *Network) BookMany(ctx context.Context, passengerID, route, descriptor string, attempts, workers int) (*BulkResult, error) {
	passenger, vehicle, err := n.resolve(passengerID, route)
	if err != nil {
		return nil, err
	}

	if workers < 1 {
		workers = 1
	}

	p := pool.NewWithResults[error]().WithMaxGoroutines(workers)
	for i := 0; i < attempts; i++ {
		p.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return passenger.BookTicket(vehicle, descriptor)
		})
	}

	result := &BulkResult{
		Attempts: attempts,
		Failed:   map[string]int{},
		Capacity: vehicle.Capacity(),
	}
	for _, err := range p.Wait() {
		if err == nil {
			result.Succeeded++
			continue
		}
		result.Failed[ErrorCode(err)]++
	}
	result.Passengers = vehicle.Passengers()

	log.Info().
		Str("passenger", passengerID).
		Str("route", route).
		Int("attempts", attempts).
		Int("succeeded", result.Succeeded).
		Int("passengers", result.Passengers).
		Msg("Bulk booking finished")

	return result, nil
}

// ErrorCode names the ledger condition behind err
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, models.ErrVehicleFull):
		return "VehicleFull"
	case errors.Is(err, models.ErrNoSeatsToCancel):
		return "NoSeatsToCancel"
	case errors.Is(err, models.ErrTicketNotFound):
		return "TicketNotFound"
	case errors.Is(err, models.ErrScheduleListFull):
		return "ScheduleListFull"
	case errors.Is(err, ErrNotFound):
		return "NotFound"
	case errors.Is(err, ErrAlreadyExists):
		return "AlreadyExists"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Cancelled"
	default:
		return "Invalid"
	}
}
