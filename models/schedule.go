package models

import (
	"fmt"
	"strings"
)

// Action is what a vehicle does at a scheduled time
type Action string

const (
	ActionDeparture Action = "departure"
	ActionArrival   Action = "arrival"
)

// ParseAction converts free text into an Action
func ParseAction(s string) (Action, error) {
	switch Action(strings.ToLower(strings.TrimSpace(s))) {
	case ActionDeparture:
		return ActionDeparture, nil
	case ActionArrival:
		return ActionArrival, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAction, s)
	}
}

// Schedule represents a departure or arrival of a route at a given time.
// Entries are kept in insertion order, never sorted by Time.
type Schedule struct {
	Time   string `json:"time" yaml:"time"`
	Action Action `json:"action" yaml:"action"`
	Route  string `json:"route" yaml:"route"`
}

// NewSchedule validates the action and builds a Schedule
func NewSchedule(time, action, route string) (Schedule, error) {
	a, err := ParseAction(action)
	if err != nil {
		return Schedule{}, err
	}
	return Schedule{Time: time, Action: a, Route: route}, nil
}

// String renders the entry as "08:00 - Route 01 departure"
func (s Schedule) String() string {
	return fmt.Sprintf("%s - %s %s", s.Time, s.Route, s.Action)
}
