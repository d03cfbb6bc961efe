package models

// VehicleInfo is a point-in-time snapshot of a vehicle
type VehicleInfo struct {
	Route            string      `json:"route"`
	Kind             VehicleKind `json:"kind"`
	Speed            float64     `json:"speed"`
	Capacity         int         `json:"capacity"`
	Passengers       int         `json:"passengers"`
	AssignedStations []string    `json:"assigned_stations"`
	Schedules        []Schedule  `json:"schedules"`
}

// StationInfo is a point-in-time snapshot of a station
type StationInfo struct {
	Name          string     `json:"name"`
	Location      string     `json:"location"`
	Schedules     []Schedule `json:"schedules"`
	ScheduleCount int        `json:"schedule_count"`
	MaxSchedules  int        `json:"max_schedules"`
}

// PassengerInfo is a point-in-time snapshot of a passenger's ledger
type PassengerInfo struct {
	Name        string   `json:"name"`
	ID          string   `json:"id"`
	Tickets     []string `json:"tickets"`
	TicketCount int      `json:"ticket_count"`
}
