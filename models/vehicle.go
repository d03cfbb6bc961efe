package models

import (
	"math"
	"strings"
	"sync"

	"golang.org/x/exp/slices"
)

// Average speeds in km/h used for travel time.
const (
	DefaultSpeed        = 50.0
	DefaultExpressSpeed = 80.0
)

// VehicleKind tells the vehicle variants apart
type VehicleKind string

const (
	KindBus        VehicleKind = "bus"
	KindExpressBus VehicleKind = "express"
)

// Vehicle is a bus of either variant. Implementations are safe for
// concurrent use.
type Vehicle interface {
	SeatBooker

	Route() string
	Kind() VehicleKind
	Speed() float64
	Capacity() int
	Passengers() int
	Available() int
	CalculateTravelTime(distance float64) float64

	AssignToStation(stationName string)
	AssignedStations() []string
	AddSchedule(schedule Schedule)
	Schedules() []Schedule

	Info() VehicleInfo
}

// Bus is the regular vehicle travelling at DefaultSpeed.
type Bus struct {
	*seatLedger

	route string

	mu        sync.RWMutex
	stations  []string
	schedules []Schedule
}

// NewBus creates a bus with an empty seat ledger
func NewBus(route string, capacity int) (*Bus, error) {
	if strings.TrimSpace(route) == "" {
		return nil, ErrInvalidRoute
	}

	ledger, err := newSeatLedger(capacity)
	if err != nil {
		return nil, err
	}

	return &Bus{seatLedger: ledger, route: route}, nil
}

func (b *Bus) Route() string     { return b.route }
func (b *Bus) Kind() VehicleKind { return KindBus }
func (b *Bus) Speed() float64    { return DefaultSpeed }

// CalculateTravelTime returns hours needed to cover distance.
// Distance is not bounds checked.
func (b *Bus) CalculateTravelTime(distance float64) float64 {
	return distance / DefaultSpeed
}

// AssignToStation records a station name. There is no link back from the
// station to the vehicle.
func (b *Bus) AssignToStation(stationName string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stations = append(b.stations, stationName)
}

func (b *Bus) AssignedStations() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.stations)
}

// AddSchedule appends to the vehicle's own timetable, which is unbounded
func (b *Bus) AddSchedule(schedule Schedule) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.schedules = append(b.schedules, schedule)
}

func (b *Bus) Schedules() []Schedule {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.schedules)
}

// Info returns a snapshot of the vehicle
func (b *Bus) Info() VehicleInfo {
	return b.info(b.Kind(), b.Speed())
}

func (b *Bus) info(kind VehicleKind, speed float64) VehicleInfo {
	return VehicleInfo{
		Route:            b.route,
		Kind:             kind,
		Speed:            speed,
		Capacity:         b.Capacity(),
		Passengers:       b.Passengers(),
		AssignedStations: b.AssignedStations(),
		Schedules:        b.Schedules(),
	}
}

// ExpressBus is a bus with its own average speed
type ExpressBus struct {
	*Bus

	expressSpeed float64
}

// NewExpressBus creates an express bus. A non-positive speed falls back to
// DefaultExpressSpeed; NaN and infinite speeds are rejected.
func NewExpressBus(route string, capacity int, speed float64) (*ExpressBus, error) {
	if math.IsNaN(speed) || math.IsInf(speed, 0) {
		return nil, ErrInvalidSpeed
	}

	bus, err := NewBus(route, capacity)
	if err != nil {
		return nil, err
	}

	if speed <= 0 {
		speed = DefaultExpressSpeed
	}

	return &ExpressBus{Bus: bus, expressSpeed: speed}, nil
}

func (e *ExpressBus) Kind() VehicleKind { return KindExpressBus }
func (e *ExpressBus) Speed() float64    { return e.expressSpeed }

func (e *ExpressBus) CalculateTravelTime(distance float64) float64 {
	return distance / e.expressSpeed
}

func (e *ExpressBus) Info() VehicleInfo {
	return e.info(e.Kind(), e.Speed())
}
