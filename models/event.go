package models

import (
	"time"

	"github.com/google/uuid"
)

// EventKind names the ledger operation an event records
type EventKind string

const (
	EventBook            EventKind = "book"
	EventCancel          EventKind = "cancel"
	EventStationSchedule EventKind = "station_schedule"
)

// LedgerEvent is one audited ledger operation, successful or not
type LedgerEvent struct {
	ID          uuid.UUID `json:"id"`
	Kind        EventKind `json:"kind"`
	PassengerID string    `json:"passenger_id,omitempty"`
	Route       string    `json:"route,omitempty"`
	Station     string    `json:"station,omitempty"`
	Descriptor  string    `json:"descriptor,omitempty"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	At          time.Time `json:"at"`
}

// NewLedgerEvent stamps a fresh event. err may be nil.
func NewLedgerEvent(kind EventKind, err error) LedgerEvent {
	event := LedgerEvent{
		ID:      uuid.New(),
		Kind:    kind,
		Success: err == nil,
		At:      time.Now().UTC(),
	}
	if err != nil {
		event.Error = err.Error()
	}
	return event
}
