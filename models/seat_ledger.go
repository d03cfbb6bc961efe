package models

import "sync"

// seatLedger counts occupied seats against a fixed capacity.
// Seats are fungible, only the count is tracked.
type seatLedger struct {
	mu         sync.Mutex
	capacity   int
	passengers int
}

func newSeatLedger(capacity int) (*seatLedger, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &seatLedger{capacity: capacity}, nil
}

// BookSeat takes one seat, or fails with ErrVehicleFull at capacity.
func (l *seatLedger) BookSeat() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.passengers >= l.capacity {
		return ErrVehicleFull
	}
	l.passengers++
	return nil
}

// CancelSeat frees one seat, or fails with ErrNoSeatsToCancel when empty.
func (l *seatLedger) CancelSeat() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.passengers <= 0 {
		return ErrNoSeatsToCancel
	}
	l.passengers--
	return nil
}

func (l *seatLedger) Capacity() int {
	return l.capacity
}

func (l *seatLedger) Passengers() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.passengers
}

// Available returns the number of free seats.
func (l *seatLedger) Available() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.capacity - l.passengers
}
