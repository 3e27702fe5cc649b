package runner

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/trainsim/pkg/network"
	"github.com/travigo/trainsim/pkg/report"
	"github.com/travigo/trainsim/pkg/simulator"
)

// Options describe a non-interactive run. Start optionally pins the first
// train, in the form "station:direction".
type Options struct {
	Trains      int
	Steps       int
	Parallelism int
	Start       string
}

func ParseStart(start string) (string, network.Direction, error) {
	separator := strings.LastIndex(start, ":")
	if separator <= 0 || separator == len(start)-1 {
		return "", "", fmt.Errorf("start %q must be station:direction", start)
	}

	direction, err := network.ParseDirection(start[separator+1:])
	if err != nil {
		return "", "", err
	}

	return start[:separator], direction, nil
}

func Run(ctx context.Context, out io.Writer, graph *network.Graph, factory *simulator.Factory, options Options) (*simulator.Fleet, error) {
	if options.Steps < 0 {
		return nil, fmt.Errorf("invalid step count %d", options.Steps)
	}

	fleet, err := simulator.NewFleet(graph, factory, 0, options.Parallelism)
	if err != nil {
		return nil, err
	}

	remaining := options.Trains
	if options.Start != "" && remaining > 0 {
		station, direction, err := ParseStart(options.Start)
		if err != nil {
			return nil, err
		}

		train, err := factory.CreateAt(graph, station, direction)
		if err != nil {
			return nil, err
		}
		fleet.Add(train)
		remaining--
	}

	for i := 0; i < remaining; i++ {
		train, err := factory.Create(graph)
		if err != nil {
			return nil, err
		}
		fleet.Add(train)
	}

	for step := 0; step < options.Steps; step++ {
		if err := fleet.Tick(ctx); err != nil {
			return fleet, fmt.Errorf("tick %d: %w", step+1, err)
		}
	}

	log.Info().Int("trains", fleet.Len()).Int("ticks", fleet.Ticks()).Msg("Simulation finished")

	return fleet, report.Write(out, fleet.Summaries())
}
