package models

import "errors"

// Ledger errors. None of them are fatal; each leaves state unchanged.
var (
	ErrVehicleFull       = errors.New("vehicle full")
	ErrNoSeatsToCancel   = errors.New("no seats to cancel")
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrScheduleListFull  = errors.New("schedule list full")
	ErrInvalidCapacity   = errors.New("capacity must be positive")
	ErrInvalidRoute      = errors.New("route must not be empty")
	ErrInvalidAction     = errors.New("action must be departure or arrival")
	ErrInvalidDescriptor = errors.New("ticket descriptor must not be empty")
	ErrInvalidSpeed      = errors.New("speed must be a finite number")
)
