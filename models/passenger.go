package models

import (
	"fmt"
	"sync"

	"golang.org/x/exp/slices"
)

// SeatBooker is the part of a vehicle a passenger books against
type SeatBooker interface {
	BookSeat() error
	CancelSeat() error
}

// Passenger holds the ticket descriptors booked by one rider
type Passenger struct {
	name string
	id   string

	mu      sync.Mutex
	tickets []string
}

// NewPassenger creates a passenger with an empty ticket ledger
func NewPassenger(name, id string) *Passenger {
	return &Passenger{name: name, id: id}
}

func (p *Passenger) Name() string { return p.name }
func (p *Passenger) ID() string   { return p.id }

// Tickets returns the booked descriptors in booking order
func (p *Passenger) Tickets() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.tickets)
}

// BookTicket takes a seat on the vehicle and, only if that succeeds,
// records the descriptor.
func (p *Passenger) BookTicket(vehicle SeatBooker, descriptor string) error {
	if descriptor == "" {
		return ErrInvalidDescriptor
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := vehicle.BookSeat(); err != nil {
		return err
	}
	p.tickets = append(p.tickets, descriptor)
	return nil
}

// CancelTicket removes the first ticket exactly matching descriptor after
// the vehicle frees a seat. A missing ticket never touches the vehicle; a
// failed seat release keeps the ticket.
func (p *Passenger) CancelTicket(vehicle SeatBooker, descriptor string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := slices.Index(p.tickets, descriptor)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrTicketNotFound, descriptor)
	}

	if err := vehicle.CancelSeat(); err != nil {
		return err
	}
	p.tickets = slices.Delete(p.tickets, i, i+1)
	return nil
}

// Info returns a snapshot of the passenger and their tickets
func (p *Passenger) Info() PassengerInfo {
	tickets := p.Tickets()
	return PassengerInfo{
		Name:        p.name,
		ID:          p.id,
		Tickets:     tickets,
		TicketCount: len(tickets),
	}
}
