package models

// VehicleCreateRequest creates a bus, or an express bus when Kind is "express"
type VehicleCreateRequest struct {
	Route    string      `json:"route" binding:"required"`
	Capacity int         `json:"capacity" binding:"required,min=1"`
	Kind     VehicleKind `json:"kind"` // bus, express
	Speed    float64     `json:"speed"`
}

// StationCreateRequest creates a station
type StationCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

// PassengerCreateRequest registers a passenger
type PassengerCreateRequest struct {
	Name string `json:"name" binding:"required"`
	ID   string `json:"id"`
}

// TicketRequest books or cancels a ticket on a vehicle
type TicketRequest struct {
	Route      string `json:"route" binding:"required"`
	Descriptor string `json:"descriptor" binding:"required"`
}

// ScheduleRequest adds a schedule entry to a station or vehicle
type ScheduleRequest struct {
	Time   string `json:"time" binding:"required"`
	Action string `json:"action" binding:"required"`
	Route  string `json:"route" binding:"required"`
}

// AssignStationRequest assigns a vehicle to a station by name
type AssignStationRequest struct {
	Station string `json:"station" binding:"required"`
}

// TicketResponse reports the outcome of a booking or cancellation
type TicketResponse struct {
	Success   bool           `json:"success"`
	Code      string         `json:"code,omitempty"`
	Message   string         `json:"message"`
	Passenger *PassengerInfo `json:"passenger,omitempty"`
	Vehicle   *VehicleInfo   `json:"vehicle,omitempty"`
}

// TravelTimeResponse reports the travel time over a distance
type TravelTimeResponse struct {
	Route    string  `json:"route"`
	Distance float64 `json:"distance"`
	Speed    float64 `json:"speed"`
	Hours    float64 `json:"hours"`
}
