package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"transit-ticketing/models"
)

// BookTicket books descriptor for a passenger on the vehicle serving route.
// The passenger keeps the descriptor only when a seat was taken.
func (n *Network) BookTicket(ctx context.Context, passengerID, route, descriptor string) (*models.Passenger, models.Vehicle, error) {
	passenger, vehicle, err := n.resolve(passengerID, route)
	if err != nil {
		return nil, nil, err
	}

	err = passenger.BookTicket(vehicle, descriptor)

	event := models.NewLedgerEvent(models.EventBook, err)
	event.PassengerID = passengerID
	event.Route = route
	event.Descriptor = descriptor
	n.record(ctx, event)

	if err != nil {
		log.Info().Err(err).
			Str("passenger", passengerID).
			Str("route", route).
			Str("descriptor", descriptor).
			Msg("Booking failed")
		return passenger, vehicle, fmt.Errorf("failed to book %q: %w", descriptor, err)
	}

	log.Info().
		Str("passenger", passengerID).
		Str("route", route).
		Str("descriptor", descriptor).
		Int("passengers", vehicle.Passengers()).
		Msg("Booking created")

	return passenger, vehicle, nil
}

// CancelTicket cancels the passenger's first ticket matching descriptor and
// frees a seat on the vehicle serving route.
func (n *Network) CancelTicket(ctx context.Context, passengerID, route, descriptor string) (*models.Passenger, models.Vehicle, error) {
	passenger, vehicle, err := n.resolve(passengerID, route)
	if err != nil {
		return nil, nil, err
	}

	err = passenger.CancelTicket(vehicle, descriptor)

	event := models.NewLedgerEvent(models.EventCancel, err)
	event.PassengerID = passengerID
	event.Route = route
	event.Descriptor = descriptor
	n.record(ctx, event)

	if err != nil {
		log.Info().Err(err).
			Str("passenger", passengerID).
			Str("route", route).
			Str("descriptor", descriptor).
			Msg("Cancellation failed")
		return passenger, vehicle, fmt.Errorf("failed to cancel %q: %w", descriptor, err)
	}

	log.Info().
		Str("passenger", passengerID).
		Str("route", route).
		Str("descriptor", descriptor).
		Int("passengers", vehicle.Passengers()).
		Msg("Booking cancelled")

	return passenger, vehicle, nil
}

func (n *Network) resolve(passengerID, route string) (*models.Passenger, models.Vehicle, error) {
	passenger, err := n.Passenger(passengerID)
	if err != nil {
		return nil, nil, err
	}

	vehicle, err := n.Vehicle(route)
	if err != nil {
		return nil, nil, err
	}

	return passenger, vehicle, nil
}
