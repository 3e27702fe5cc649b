package simulator

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/travigo/trainsim/pkg/network"
)

// NoLine is the colour reported for a train whose starting station has no
// links in either direction. Such a train never moves.
const NoLine = "NO"

var (
	ErrEmptyGraph            = errors.New("graph has no stations")
	ErrInternalInconsistency = errors.New("graph is inconsistent")
)

type Train struct {
	ID        int
	Station   string
	Direction network.Direction
	Colour    string
	Delayed   bool

	// noLine is kept apart from Colour so a line actually named NoLine
	// still moves
	noLine bool
	random RandomSource
}

type Summary struct {
	ID        int    `json:"id" groups:"basic,detailed"`
	Colour    string `json:"colour" groups:"basic,detailed"`
	Station   string `json:"station" groups:"basic,detailed"`
	Direction string `json:"direction" groups:"basic,detailed"`
	Delayed   bool   `json:"delayed" groups:"basic,detailed"`
}

func (t *Train) HasLine() bool {
	return !t.noLine
}

// Candidates returns the links the train could take from its current
// station given its direction and line
func (t *Train) Candidates(graph *network.Graph) ([]network.Link, error) {
	if t.noLine {
		return nil, nil
	}

	links, err := graph.LinksFor(t.Station, t.Direction, t.Colour)
	if err != nil {
		return nil, fmt.Errorf("train %d at %s: %w", t.ID, t.Station, ErrInternalInconsistency)
	}

	return links, nil
}

func (t *Train) selectColour(graph *network.Graph) error {
	candidates, err := graph.LinksInDirection(t.Station, t.Direction)
	if err != nil {
		return fmt.Errorf("train %d at %s: %w", t.ID, t.Station, ErrInternalInconsistency)
	}

	if len(candidates) == 0 {
		t.Direction = t.Direction.Invert()

		candidates, err = graph.LinksInDirection(t.Station, t.Direction)
		if err != nil {
			return fmt.Errorf("train %d at %s: %w", t.ID, t.Station, ErrInternalInconsistency)
		}

		if len(candidates) == 0 {
			t.Colour = NoLine
			t.noLine = true
			return nil
		}
	}

	t.Colour = candidates[t.random.IntN(len(candidates))].Colour
	t.noLine = false

	return nil
}

// Step advances the train by one tick. A delayed train stays put, otherwise
// it moves along one of its candidate links. The direction is inverted at
// most once before moving and at most once after.
func (t *Train) Step(graph *network.Graph) error {
	station, err := graph.Find(t.Station)
	if err != nil {
		return fmt.Errorf("train %d at %s: %w", t.ID, t.Station, ErrInternalInconsistency)
	}

	probability := station.DelayProbability
	t.Delayed = WeightedChoice(t.random, []float64{probability, 1 - probability}) == 0

	if t.Delayed || !t.HasLine() {
		return nil
	}

	candidates, err := t.Candidates(graph)
	if err != nil {
		return err
	}

	if len(candidates) == 0 {
		t.Direction = t.Direction.Invert()

		candidates, err = t.Candidates(graph)
		if err != nil {
			return err
		}

		if len(candidates) == 0 {
			return nil
		}
	}

	next := candidates[t.random.IntN(len(candidates))]
	if _, err := graph.Find(next.Target); err != nil {
		return fmt.Errorf("train %d link %s -> %s: %w", t.ID, t.Station, next.Target, ErrInternalInconsistency)
	}
	t.Station = next.Target

	// Turn round now so the next tick starts in a direction that can move
	candidates, err = t.Candidates(graph)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		t.Direction = t.Direction.Invert()
	}

	return nil
}

func (t *Train) Describe() Summary {
	var summary Summary

	if err := copier.Copy(&summary, t); err != nil {
		log.Error().Err(err).Int("train", t.ID).Msg("Failed to copy train summary")
	}
	summary.Direction = t.Direction.Name()

	return summary
}
