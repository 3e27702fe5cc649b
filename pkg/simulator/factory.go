package simulator

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/trainsim/pkg/network"
)

// Factory creates trains against a graph. Random picks the starting
// station and direction, TrainRandom gives each new train its own stream.
type Factory struct {
	Sequence    *Sequence
	Random      RandomSource
	TrainRandom func(id int) RandomSource
}

func NewFactory(seed uint64) *Factory {
	return &Factory{
		Sequence: NewSequence(),
		Random:   NewRandomSource(seed, 0),
		TrainRandom: func(id int) RandomSource {
			return NewRandomSource(seed, uint64(id))
		},
	}
}

func (f *Factory) Create(graph *network.Graph) (*Train, error) {
	stations := graph.Stations()
	if len(stations) == 0 {
		return nil, ErrEmptyGraph
	}

	station := stations[f.Random.IntN(len(stations))]
	direction := network.Directions[f.Random.IntN(len(network.Directions))]

	return f.build(graph, station, direction)
}

// CreateAt creates a train pinned to a starting station and direction
func (f *Factory) CreateAt(graph *network.Graph, station string, direction network.Direction) (*Train, error) {
	if graph.Len() == 0 {
		return nil, ErrEmptyGraph
	}
	if _, err := graph.Find(station); err != nil {
		return nil, err
	}
	if !direction.Valid() {
		return nil, fmt.Errorf("invalid direction %q", direction)
	}

	return f.build(graph, station, direction)
}

func (f *Factory) build(graph *network.Graph, station string, direction network.Direction) (*Train, error) {
	id := f.Sequence.Next()

	train := &Train{
		ID:        id,
		Station:   station,
		Direction: direction,
		random:    f.TrainRandom(id),
	}

	if err := train.selectColour(graph); err != nil {
		return nil, err
	}

	log.Debug().
		Int("train", train.ID).
		Str("station", train.Station).
		Str("direction", train.Direction.Name()).
		Str("colour", train.Colour).
		Msg("Created train")

	return train, nil
}
