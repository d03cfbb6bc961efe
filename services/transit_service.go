package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"transit-ticketing/models"
)

// AddStationSchedule appends an entry to a station's bounded schedule list
func (n *Network) AddStationSchedule(ctx context.Context, stationName string, schedule models.Schedule) (*models.Station, error) {
	station, err := n.Station(stationName)
	if err != nil {
		return nil, err
	}

	err = station.AddSchedule(schedule)

	event := models.NewLedgerEvent(models.EventStationSchedule, err)
	event.Station = stationName
	event.Route = schedule.Route
	event.Descriptor = schedule.String()
	n.record(ctx, event)

	if err != nil {
		log.Info().Err(err).Str("station", stationName).Str("schedule", schedule.String()).Msg("Schedule rejected")
		return station, fmt.Errorf("station %q: %w", stationName, err)
	}

	log.Debug().Str("station", stationName).Str("schedule", schedule.String()).Msg("Added schedule")
	return station, nil
}

// AddVehicleSchedule appends an entry to a vehicle's own timetable
func (n *Network) AddVehicleSchedule(route string, schedule models.Schedule) (models.Vehicle, error) {
	vehicle, err := n.Vehicle(route)
	if err != nil {
		return nil, err
	}

	vehicle.AddSchedule(schedule)
	log.Debug().Str("route", route).Str("schedule", schedule.String()).Msg("Added vehicle schedule")

	return vehicle, nil
}

// AssignVehicleToStation records the station name on the vehicle. The
// station must exist but is not modified.
func (n *Network) AssignVehicleToStation(route, stationName string) (models.Vehicle, error) {
	vehicle, err := n.Vehicle(route)
	if err != nil {
		return nil, err
	}

	station, err := n.Station(stationName)
	if err != nil {
		return nil, err
	}

	vehicle.AssignToStation(station.Name())
	log.Debug().Str("route", route).Str("station", stationName).Msg("Vehicle assigned to station")

	return vehicle, nil
}

// TravelTime returns the hours the vehicle on route needs for distance
func (n *Network) TravelTime(route string, distance float64) (*models.TravelTimeResponse, error) {
	vehicle, err := n.Vehicle(route)
	if err != nil {
		return nil, err
	}

	return &models.TravelTimeResponse{
		Route:    route,
		Distance: distance,
		Speed:    vehicle.Speed(),
		Hours:    vehicle.CalculateTravelTime(distance),
	}, nil
}
