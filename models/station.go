package models

import (
	"sync"

	"golang.org/x/exp/slices"
)

// MaxStationSchedules is the hard ceiling on a station's schedule list
const MaxStationSchedules = 10

// Station represents a stop with a bounded list of schedule entries
type Station struct {
	name     string
	location string

	mu        sync.RWMutex
	schedules []Schedule
}

// NewStation creates a station with no schedules
func NewStation(name, location string) *Station {
	return &Station{
		name:      name,
		location:  location,
		schedules: make([]Schedule, 0, MaxStationSchedules),
	}
}

func (s *Station) Name() string     { return s.name }
func (s *Station) Location() string { return s.location }

// AddSchedule appends the entry while fewer than MaxStationSchedules are
// held. At the bound the entry is dropped and ErrScheduleListFull returned;
// existing entries are never evicted.
func (s *Station) AddSchedule(schedule Schedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.schedules) >= MaxStationSchedules {
		return ErrScheduleListFull
	}
	s.schedules = append(s.schedules, schedule)
	return nil
}

// Schedules returns the entries in insertion order
func (s *Station) Schedules() []Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.schedules)
}

// Info returns a snapshot of the station and its schedules
func (s *Station) Info() StationInfo {
	schedules := s.Schedules()
	return StationInfo{
		Name:          s.name,
		Location:      s.location,
		Schedules:     schedules,
		ScheduleCount: len(schedules),
		MaxSchedules:  MaxStationSchedules,
	}
}
