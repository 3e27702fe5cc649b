package simulator

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/trainsim/pkg/network"
)

var ErrTrainNotFound = errors.New("train not found")

// Fleet runs a set of trains against a shared graph. Ticks and graph
// mutation both take the write lock so a delay change always lands
// between two batches.
type Fleet struct {
	mu sync.RWMutex

	graph       *network.Graph
	trains      []*Train
	parallelism int
	ticks       int
}

func NewFleet(graph *network.Graph, factory *Factory, count int, parallelism int) (*Fleet, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid train count %d", count)
	}
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	fleet := &Fleet{
		graph:       graph,
		parallelism: parallelism,
	}

	for i := 0; i < count; i++ {
		train, err := factory.Create(graph)
		if err != nil {
			return nil, err
		}

		fleet.trains = append(fleet.trains, train)
	}

	return fleet, nil
}

// Add appends an already created train, eg. one pinned with CreateAt
func (f *Fleet) Add(train *Train) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.trains = append(f.trains, train)
}

func (f *Fleet) Tick(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	p := pool.New().WithMaxGoroutines(f.parallelism).WithErrors()
	for _, train := range f.trains {
		p.Go(func() error {
			return train.Step(f.graph)
		})
	}

	if err := p.Wait(); err != nil {
		return err
	}

	f.ticks++

	log.Debug().Int("tick", f.ticks).Int("trains", len(f.trains)).Msg("Completed tick")

	return nil
}

func (f *Fleet) SetDelay(name string, probability float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.graph.SetDelay(name, probability)
}

func (f *Fleet) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return len(f.trains)
}

func (f *Fleet) Ticks() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.ticks
}

func (f *Fleet) Summaries() []Summary {
	f.mu.RLock()
	defer f.mu.RUnlock()

	summaries := make([]Summary, 0, len(f.trains))
	for _, train := range f.trains {
		summaries = append(summaries, train.Describe())
	}

	return summaries
}

func (f *Fleet) Summary(id int) (Summary, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	train, err := f.find(id)
	if err != nil {
		return Summary{}, err
	}

	return train.Describe(), nil
}

// NextStations lists where the train could go on its next undelayed tick
func (f *Fleet) NextStations(id int) ([]string, error) {
	_, stations, err := f.Detail(id)
	return stations, err
}

// Detail returns a train's summary together with its next stations, both
// read under the same lock so they describe the same tick
func (f *Fleet) Detail(id int) (Summary, []string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	train, err := f.find(id)
	if err != nil {
		return Summary{}, nil, err
	}

	links, err := train.Candidates(f.graph)
	if err != nil {
		return Summary{}, nil, err
	}

	stations := []string{}
	for _, link := range links {
		stations = append(stations, link.Target)
	}

	return train.Describe(), stations, nil
}

// Station returns a copy of the named station so callers never hold a
// pointer into the shared graph
func (f *Fleet) Station(name string) (network.Station, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	station, err := f.graph.Find(name)
	if err != nil {
		return network.Station{}, err
	}

	stationCopy := *station
	stationCopy.Links = append([]network.Link(nil), station.Links...)

	return stationCopy, nil
}

func (f *Fleet) find(id int) (*Train, error) {
	for _, train := range f.trains {
		if train.ID == id {
			return train, nil
		}
	}

	return nil, fmt.Errorf("train %d: %w", id, ErrTrainNotFound)
}
