package services

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"transit-ticketing/models"
)

//go:embed seed/default.yaml
var defaultSeed []byte

// Seed describes a network fixture
type Seed struct {
	Stations   []SeedStation   `yaml:"stations"`
	Vehicles   []SeedVehicle   `yaml:"vehicles"`
	Passengers []SeedPassenger `yaml:"passengers"`
}

type SeedStation struct {
	Name      string            `yaml:"name"`
	Location  string            `yaml:"location"`
	Schedules []models.Schedule `yaml:"schedules"`
}

type SeedVehicle struct {
	Route     string             `yaml:"route"`
	Kind      models.VehicleKind `yaml:"kind"`
	Capacity  int                `yaml:"capacity"`
	Speed     float64            `yaml:"speed"`
	Stations  []string           `yaml:"stations"`
	Schedules []models.Schedule  `yaml:"schedules"`
}

type SeedPassenger struct {
	Name string `yaml:"name"`
	ID   string `yaml:"id"`
}

// LoadDefaultSeed builds the built-in demo network
func LoadDefaultSeed(recorder EventRecorder) (*Network, error) {
	return LoadSeed(bytes.NewReader(defaultSeed), recorder)
}

// LoadSeedFile builds a network from a YAML file on disk
func LoadSeedFile(path string, recorder EventRecorder) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	log.Debug().Str("path", path).Msg("Loading seed file")
	return LoadSeed(f, recorder)
}

// LoadSeed decodes a YAML fixture and registers everything it names.
// Stations are created first so vehicles can be assigned to them.
func LoadSeed(r io.Reader, recorder EventRecorder) (*Network, error) {
	var seed Seed
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}

	network := NewNetwork(recorder)

	for _, s := range seed.Stations {
		station := models.NewStation(s.Name, s.Location)
		for _, schedule := range s.Schedules {
			schedule, err := normalizeSchedule(schedule)
			if err != nil {
				return nil, fmt.Errorf("station %q: %w", s.Name, err)
			}
			if err := station.AddSchedule(schedule); err != nil {
				return nil, fmt.Errorf("station %q: %w", s.Name, err)
			}
		}
		if err := network.AddStation(station); err != nil {
			return nil, err
		}
	}

	for _, v := range seed.Vehicles {
		vehicle, err := network.CreateVehicle(models.VehicleCreateRequest{
			Route:    v.Route,
			Capacity: v.Capacity,
			Kind:     v.Kind,
			Speed:    v.Speed,
		})
		if err != nil {
			return nil, fmt.Errorf("vehicle %q: %w", v.Route, err)
		}

		for _, name := range v.Stations {
			if _, err := network.AssignVehicleToStation(v.Route, name); err != nil {
				return nil, err
			}
		}
		for _, schedule := range v.Schedules {
			schedule, err := normalizeSchedule(schedule)
			if err != nil {
				return nil, fmt.Errorf("vehicle %q: %w", v.Route, err)
			}
			vehicle.AddSchedule(schedule)
		}
	}

	for _, p := range seed.Passengers {
		if err := network.AddPassenger(models.NewPassenger(p.Name, p.ID)); err != nil {
			return nil, err
		}
	}

	log.Info().
		Int("stations", len(seed.Stations)).
		Int("vehicles", len(seed.Vehicles)).
		Int("passengers", len(seed.Passengers)).
		Msg("Loaded network seed")

	return network, nil
}

func normalizeSchedule(schedule models.Schedule) (models.Schedule, error) {
	return models.NewSchedule(schedule.Time, string(schedule.Action), schedule.Route)
}
