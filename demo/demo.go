// Package demo replays the original public transportation walkthrough
// against a network and prints a console transcript.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"transit-ticketing/models"
	"transit-ticketing/report"
	"transit-ticketing/services"
)

// Entities the walkthrough expects in the network, as found in the
// default seed.
const (
	BusRoute        = "Route 01"
	ExpressRoute    = "Express Route 02"
	BenThanh        = "Ben Thanh Station"
	ThuDuc          = "Thu Duc Station"
	FirstPassenger  = "P001"
	SecondPassenger = "P002"

	Distance = 100.0
)

// Step is the outcome of one ledger call made by the walkthrough
type Step struct {
	Operation string
	Success   bool
	Code      string
}

// Outcome lists every ledger call in the order it was made
type Outcome struct {
	Steps []Step

	BusFullAfter int
}

func (o *Outcome) add(operation string, err error) {
	o.Steps = append(o.Steps, Step{Operation: operation, Success: err == nil, Code: services.ErrorCode(err)})
}

// Run plays the walkthrough. Ledger failures are part of the script and
// are reported in the transcript; only missing entities return an error.
func Run(ctx context.Context, w io.Writer, network *services.Network) (*Outcome, error) {
	bus, err := network.Vehicle(BusRoute)
	if err != nil {
		return nil, err
	}
	express, err := network.Vehicle(ExpressRoute)
	if err != nil {
		return nil, err
	}
	first, err := network.Passenger(FirstPassenger)
	if err != nil {
		return nil, err
	}
	second, err := network.Passenger(SecondPassenger)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{}

	fmt.Fprintln(w, "=== PUBLIC TRANSPORTATION MANAGEMENT SYSTEM ===")
	fmt.Fprintln(w)

	for _, station := range network.Stations() {
		fmt.Fprintf(w, "Created station %s\n", station.Name())
	}
	for _, vehicle := range network.Vehicles() {
		fmt.Fprintf(w, "Created vehicle for route %s\n", vehicle.Route())
	}
	fmt.Fprintln(w)

	// Assign vehicles to stations
	for _, assignment := range [][2]string{{BusRoute, BenThanh}, {ExpressRoute, ThuDuc}} {
		if _, err := network.AssignVehicleToStation(assignment[0], assignment[1]); err != nil {
			return nil, err
		}
		fmt.Fprintf(w, "Vehicle %s assigned to station: %s\n", assignment[0], assignment[1])
	}

	// Vehicle timetables
	vehicleSchedules := []struct {
		route    string
		schedule models.Schedule
	}{
		{BusRoute, models.Schedule{Time: "08:00", Action: models.ActionDeparture, Route: BusRoute}},
		{BusRoute, models.Schedule{Time: "09:30", Action: models.ActionArrival, Route: BusRoute}},
		{ExpressRoute, models.Schedule{Time: "08:15", Action: models.ActionDeparture, Route: ExpressRoute}},
	}
	for _, vs := range vehicleSchedules {
		if _, err := network.AddVehicleSchedule(vs.route, vs.schedule); err != nil {
			return nil, err
		}
		fmt.Fprintf(w, "Added schedule to vehicle %s: %s\n", vs.route, vs.schedule)
	}

	fmt.Fprintln(w, "=== TRAVEL TIME COMPARISON ===")
	fmt.Fprintf(w, "Distance: %s km\n", report.Number(Distance))
	fmt.Fprintf(w, "Bus travel time: %s hours\n", report.Number(bus.CalculateTravelTime(Distance)))
	fmt.Fprintf(w, "Express bus travel time: %s hours\n", report.Number(express.CalculateTravelTime(Distance)))
	fmt.Fprintln(w)

	report.Vehicle(w, bus.Info())
	fmt.Fprintln(w)
	report.Vehicle(w, express.Info())
	fmt.Fprintln(w)

	// Station schedules
	for _, s := range []models.Schedule{
		{Time: "08:00", Action: models.ActionDeparture, Route: BusRoute},
		{Time: "08:15", Action: models.ActionDeparture, Route: ExpressRoute},
		{Time: "09:30", Action: models.ActionArrival, Route: BusRoute},
	} {
		addStationSchedule(ctx, w, network, outcome, BenThanh, s)
	}

	for _, name := range []string{BenThanh, ThuDuc} {
		station, err := network.Station(name)
		if err != nil {
			return nil, err
		}
		report.Station(w, station.Info())
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== BOOKING SYSTEM ===")
	book(ctx, w, network, outcome, first, BusRoute, "Route 01 - 08:00")
	book(ctx, w, network, outcome, second, ExpressRoute, "Express Route 02 - 08:15")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== CAPACITY LIMIT TEST ===")
	fmt.Fprintf(w, "Trying to book many tickets for bus (capacity %d)...\n", bus.Capacity())
	for i := 0; i < bus.Capacity()+2; i++ {
		if !book(ctx, w, network, outcome, second, BusRoute, "Route 01 - 08:00") {
			outcome.BusFullAfter = bus.Passengers()
			fmt.Fprintf(w, "Bus is full after %d tickets!\n", outcome.BusFullAfter)
			break
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "=== CANCEL TICKET TEST ===")
	cancel(ctx, w, network, outcome, second, BusRoute, "Route 01 - 08:00")
	cancel(ctx, w, network, outcome, first, ExpressRoute, "Express Route 02 - 08:15")

	report.Passenger(w, first.Info())
	report.Passenger(w, second.Info())

	fmt.Fprintln(w, "\n=== SCHEDULE LIMIT TEST ===")
	for i := 4; i <= 12; i++ {
		s := models.Schedule{
			Time:   fmt.Sprintf("10:%02d", i),
			Action: models.ActionDeparture,
			Route:  fmt.Sprintf("Route %d", i),
		}
		addStationSchedule(ctx, w, network, outcome, BenThanh, s)
	}

	station, err := network.Station(BenThanh)
	if err != nil {
		return nil, err
	}
	report.Station(w, station.Info())

	fmt.Fprintln(w, "\n=== FINAL SYSTEM STATUS ===")
	fmt.Fprintf(w, "Bus: %d/%d passengers\n", bus.Passengers(), bus.Capacity())
	fmt.Fprintf(w, "Express bus: %d/%d passengers\n", express.Passengers(), express.Capacity())

	return outcome, nil
}

func book(ctx context.Context, w io.Writer, network *services.Network, outcome *Outcome, passenger *models.Passenger, route, descriptor string) bool {
	_, _, err := network.BookTicket(ctx, passenger.ID(), route, descriptor)
	outcome.add("book "+descriptor, err)

	if err != nil {
		reason := err.Error()
		if errors.Is(err, models.ErrVehicleFull) {
			reason = "vehicle full"
		}
		fmt.Fprintf(w, "%s failed to book: %s!\n", passenger.Name(), reason)
		return false
	}
	fmt.Fprintf(w, "%s booked: %s\n", passenger.Name(), descriptor)
	return true
}

func cancel(ctx context.Context, w io.Writer, network *services.Network, outcome *Outcome, passenger *models.Passenger, route, descriptor string) bool {
	_, _, err := network.CancelTicket(ctx, passenger.ID(), route, descriptor)
	outcome.add("cancel "+descriptor, err)

	if err != nil {
		fmt.Fprintf(w, "%s does not have ticket: %s\n", passenger.Name(), descriptor)
		return false
	}
	fmt.Fprintf(w, "%s cancelled: %s\n", passenger.Name(), descriptor)
	return true
}

func addStationSchedule(ctx context.Context, w io.Writer, network *services.Network, outcome *Outcome, stationName string, schedule models.Schedule) {
	_, err := network.AddStationSchedule(ctx, stationName, schedule)
	outcome.add("schedule "+schedule.String(), err)

	if err != nil {
		fmt.Fprintf(w, "Cannot add - already have %d schedules!\n", models.MaxStationSchedules)
		return
	}
	fmt.Fprintf(w, "Added schedule: %s\n", schedule)
}
