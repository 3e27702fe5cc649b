package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Scenario struct {
	Connections string `yaml:"connections"`
	Stations    string `yaml:"stations"`
	Trains      int    `yaml:"trains"`
	Seed        uint64 `yaml:"seed"`
	Parallelism int    `yaml:"parallelism"`
	Listen      string `yaml:"listen"`
}

var defaultScenario = Scenario{
	Connections: "connections.csv",
	Trains:      1,
	Listen:      ":8080",
}

func Default() Scenario {
	scenario := defaultScenario
	scenario.Parallelism = runtime.GOMAXPROCS(0)

	return scenario
}

// Load reads the scenario file at path on top of the defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (Scenario, error) {
	scenario := Default()

	if path != "" {
		scenarioYaml, err := os.ReadFile(path)
		if err != nil {
			return scenario, err
		}

		log.Debug().Str("path", path).Msg("Loading scenario file")

		if err := Parse(scenarioYaml, &scenario); err != nil {
			return scenario, fmt.Errorf("scenario %s: %w", path, err)
		}
	}

	ApplyEnvironment(&scenario)

	return scenario, scenario.Validate()
}

func Parse(scenarioYaml []byte, scenario *Scenario) error {
	decoder := yaml.NewDecoder(bytes.NewReader(scenarioYaml))
	decoder.KnownFields(true)

	if err := decoder.Decode(scenario); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func ApplyEnvironment(scenario *Scenario) {
	if val := os.Getenv("TRAINSIM_CONNECTIONS"); val != "" {
		scenario.Connections = val
	}

	if val := os.Getenv("TRAINSIM_STATIONS"); val != "" {
		scenario.Stations = val
	}

	if val := os.Getenv("TRAINSIM_TRAINS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			scenario.Trains = parsed
		}
	}

	if val := os.Getenv("TRAINSIM_SEED"); val != "" {
		if parsed, err := strconv.ParseUint(val, 10, 64); err == nil {
			scenario.Seed = parsed
		}
	}

	if val := os.Getenv("TRAINSIM_PARALLELISM"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			scenario.Parallelism = parsed
		}
	}

	if val := os.Getenv("TRAINSIM_LISTEN"); val != "" {
		scenario.Listen = val
	}
}

func (s Scenario) Validate() error {
	if s.Trains < 0 {
		return fmt.Errorf("trains must not be negative, got %d", s.Trains)
	}
	if s.Parallelism <= 0 {
		return fmt.Errorf("parallelism must be positive, got %d", s.Parallelism)
	}
	if s.Connections == "" {
		return fmt.Errorf("no connections file configured")
	}

	return nil
}
