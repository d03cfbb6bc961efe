// Package report renders ledger snapshots as console text.
package report

import (
	"fmt"
	"io"
	"strings"

	"transit-ticketing/models"
)

// Vehicle writes a vehicle block. Express buses get their own header and
// speed line.
func Vehicle(w io.Writer, info models.VehicleInfo) {
	if info.Kind == models.KindExpressBus {
		fmt.Fprintln(w, "=== EXPRESS BUS ===")
		fmt.Fprintf(w, "Route: %s\n", info.Route)
		fmt.Fprintf(w, "Capacity: %d\n", info.Capacity)
		fmt.Fprintf(w, "Passengers: %d\n", info.Passengers)
		fmt.Fprintf(w, "Express speed: %s km/h\n", Number(info.Speed))
	} else {
		fmt.Fprintln(w, "=== VEHICLE INFO ===")
		fmt.Fprintf(w, "Route: %s\n", info.Route)
		fmt.Fprintf(w, "Capacity: %d people\n", info.Capacity)
		fmt.Fprintf(w, "Current passengers: %d people\n", info.Passengers)
	}

	stations := "None"
	if len(info.AssignedStations) > 0 {
		stations = strings.Join(info.AssignedStations, ", ")
	}
	fmt.Fprintf(w, "Stations assigned: %s\n", stations)

	fmt.Fprintf(w, "Vehicle schedules: %d\n", len(info.Schedules))
	for _, s := range info.Schedules {
		fmt.Fprintf(w, "  %s\n", s)
	}
}

// Station writes a station block with 1-indexed schedules
func Station(w io.Writer, info models.StationInfo) {
	fmt.Fprintln(w, "\n=== STATION INFO ===")
	fmt.Fprintf(w, "Station name: %s\n", info.Name)
	fmt.Fprintf(w, "Location: %s\n", info.Location)
	fmt.Fprintf(w, "Number of schedules: %d/%d\n", info.ScheduleCount, info.MaxSchedules)
	fmt.Fprintln(w, "Schedules:")
	for i, s := range info.Schedules {
		fmt.Fprintf(w, "  %d. %s\n", i+1, s)
	}
}

// Passenger writes a passenger block with 1-indexed tickets
func Passenger(w io.Writer, info models.PassengerInfo) {
	fmt.Fprintln(w, "\n=== PASSENGER INFO ===")
	fmt.Fprintf(w, "Name: %s\n", info.Name)
	fmt.Fprintf(w, "ID: %s\n", info.ID)
	fmt.Fprintf(w, "Number of tickets booked: %d\n", info.TicketCount)
	for i, ticket := range info.Tickets {
		fmt.Fprintf(w, "  Ticket %d: %s\n", i+1, ticket)
	}
}

// Number formats a float with up to six significant digits and no
// trailing zeros, so 2 prints as "2" and 100/60 as "1.66667".
func Number(f float64) string {
	return fmt.Sprintf("%.6g", f)
}
