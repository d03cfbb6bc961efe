package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"transit-ticketing/models"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// EventRecorder stores ledger events. The database journal implements it.
type EventRecorder interface {
	Record(ctx context.Context, event models.LedgerEvent) error
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, models.LedgerEvent) error { return nil }

// Network is the in-memory registry of vehicles, stations and passengers.
// Vehicles and stations are independent; neither references the other.
type Network struct {
	mu sync.RWMutex

	vehicles   map[string]models.Vehicle
	stations   map[string]*models.Station
	passengers map[string]*models.Passenger

	// registration order for listings
	vehicleOrder   []string
	stationOrder   []string
	passengerOrder []string

	recorder EventRecorder
}

// NewNetwork creates an empty network. A nil recorder discards events.
func NewNetwork(recorder EventRecorder) *Network {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Network{
		vehicles:   map[string]models.Vehicle{},
		stations:   map[string]*models.Station{},
		passengers: map[string]*models.Passenger{},
		recorder:   recorder,
	}
}

// AddVehicle registers a vehicle under its route
func (n *Network) AddVehicle(vehicle models.Vehicle) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	route := vehicle.Route()
	if _, ok := n.vehicles[route]; ok {
		return fmt.Errorf("vehicle %q: %w", route, ErrAlreadyExists)
	}
	n.vehicles[route] = vehicle
	n.vehicleOrder = append(n.vehicleOrder, route)

	log.Debug().Str("route", route).Str("kind", string(vehicle.Kind())).Int("capacity", vehicle.Capacity()).Msg("Created vehicle")
	return nil
}

// CreateVehicle builds a bus or express bus from a request and registers it
func (n *Network) CreateVehicle(req models.VehicleCreateRequest) (models.Vehicle, error) {
	var vehicle models.Vehicle
	var err error

	switch req.Kind {
	case models.KindExpressBus:
		vehicle, err = models.NewExpressBus(req.Route, req.Capacity, req.Speed)
	case models.KindBus, "":
		vehicle, err = models.NewBus(req.Route, req.Capacity)
	default:
		return nil, fmt.Errorf("unknown vehicle kind: %s", req.Kind)
	}
	if err != nil {
		return nil, err
	}

	if err := n.AddVehicle(vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// AddStation registers a station under its name
func (n *Network) AddStation(station *models.Station) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	name := station.Name()
	if _, ok := n.stations[name]; ok {
		return fmt.Errorf("station %q: %w", name, ErrAlreadyExists)
	}
	n.stations[name] = station
	n.stationOrder = append(n.stationOrder, name)

	log.Debug().Str("station", name).Msg("Created station")
	return nil
}

// AddPassenger registers a passenger under their ID
func (n *Network) AddPassenger(passenger *models.Passenger) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := passenger.ID()
	if _, ok := n.passengers[id]; ok {
		return fmt.Errorf("passenger %q: %w", id, ErrAlreadyExists)
	}
	n.passengers[id] = passenger
	n.passengerOrder = append(n.passengerOrder, id)
	return nil
}

// Vehicle returns the vehicle registered under route
func (n *Network) Vehicle(route string) (models.Vehicle, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	vehicle, ok := n.vehicles[route]
	if !ok {
		return nil, fmt.Errorf("vehicle %q: %w", route, ErrNotFound)
	}
	return vehicle, nil
}

// Station returns the station registered under name
func (n *Network) Station(name string) (*models.Station, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	station, ok := n.stations[name]
	if !ok {
		return nil, fmt.Errorf("station %q: %w", name, ErrNotFound)
	}
	return station, nil
}

// Passenger returns the passenger registered under id
func (n *Network) Passenger(id string) (*models.Passenger, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	passenger, ok := n.passengers[id]
	if !ok {
		return nil, fmt.Errorf("passenger %q: %w", id, ErrNotFound)
	}
	return passenger, nil
}

// Vehicles lists vehicles in registration order
func (n *Network) Vehicles() []models.Vehicle {
	n.mu.RLock()
	defer n.mu.RUnlock()

	vehicles := make([]models.Vehicle, 0, len(n.vehicleOrder))
	for _, route := range n.vehicleOrder {
		vehicles = append(vehicles, n.vehicles[route])
	}
	return vehicles
}

// Stations lists stations in registration order
func (n *Network) Stations() []*models.Station {
	n.mu.RLock()
	defer n.mu.RUnlock()

	stations := make([]*models.Station, 0, len(n.stationOrder))
	for _, name := range n.stationOrder {
		stations = append(stations, n.stations[name])
	}
	return stations
}

// Passengers lists passengers in registration order
func (n *Network) Passengers() []*models.Passenger {
	n.mu.RLock()
	defer n.mu.RUnlock()

	passengers := make([]*models.Passenger, 0, len(n.passengerOrder))
	for _, id := range n.passengerOrder {
		passengers = append(passengers, n.passengers[id])
	}
	return passengers
}

// record hands an event to the recorder. Failures are logged only, the
// ledger outcome has already happened.
func (n *Network) record(ctx context.Context, event models.LedgerEvent) {
	if err := n.recorder.Record(ctx, event); err != nil {
		log.Error().Err(err).Str("event", event.ID.String()).Str("kind", string(event.Kind)).Msg("Failed to record ledger event")
	}
}
