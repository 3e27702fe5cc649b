package simulator

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/trainsim/pkg/network"
)

func TestFleetTick(t *testing.T) {
	g := lineGraph()

	fleet, err := NewFleet(g, NewFactory(8), 25, 4)
	require.NoError(t, err)
	assert.Equal(t, 25, fleet.Len())

	before := fleet.Summaries()
	require.NoError(t, fleet.Tick(context.Background()))
	after := fleet.Summaries()

	assert.Equal(t, 1, fleet.Ticks())
	require.Len(t, after, 25)
	for i := range after {
		assert.Equal(t, before[i].ID, after[i].ID)
		assert.NotEqual(t, before[i].Station, after[i].Station)
		assert.False(t, after[i].Delayed)
	}
}

func TestFleetMatchesSequentialSteps(t *testing.T) {
	build := func() *network.Graph {
		g := lineGraph()
		g.AddLink("B", "X", "blue", network.North)
		g.AddLink("X", "Y", "blue", network.North)
		require.NoError(t, g.SetDelay("B", 0.5))
		require.NoError(t, g.SetDelay("X", 0.2))
		return g
	}

	parallel, err := NewFleet(build(), NewFactory(77), 10, 8)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		require.NoError(t, parallel.Tick(context.Background()))
	}

	g := build()
	factory := NewFactory(77)
	var trains []*Train
	for i := 0; i < 10; i++ {
		train, err := factory.Create(g)
		require.NoError(t, err)
		trains = append(trains, train)
	}
	for i := 0; i < 20; i++ {
		for _, train := range trains {
			require.NoError(t, train.Step(g))
		}
	}

	var sequential []Summary
	for _, train := range trains {
		sequential = append(sequential, train.Describe())
	}

	assert.Equal(t, sequential, parallel.Summaries())
}

func TestFleetSetDelay(t *testing.T) {
	g := lineGraph()
	fleet, err := NewFleet(g, NewFactory(1), 0, 1)
	require.NoError(t, err)

	train, err := NewFactory(1).CreateAt(g, "B", network.North)
	require.NoError(t, err)
	fleet.Add(train)

	require.NoError(t, fleet.SetDelay("B", 1))
	require.NoError(t, fleet.Tick(context.Background()))

	summary, err := fleet.Summary(train.ID)
	require.NoError(t, err)
	assert.True(t, summary.Delayed)
	assert.Equal(t, "B", summary.Station)

	assert.ErrorIs(t, fleet.SetDelay("Nowhere", 0.5), network.ErrNotFound)

	station, err := fleet.Station("B")
	require.NoError(t, err)
	assert.Equal(t, 1.0, station.DelayProbability)
}

func TestFleetConcurrentSetDelay(t *testing.T) {
	g := lineGraph()
	fleet, err := NewFleet(g, NewFactory(3), 50, 4)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			assert.NoError(t, fleet.Tick(context.Background()))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			assert.NoError(t, fleet.SetDelay("C", float64(i%2)))
		}
	}()
	wg.Wait()

	assert.Equal(t, 50, fleet.Ticks())
}

func TestFleetNextStations(t *testing.T) {
	g := lineGraph()
	fleet, err := NewFleet(g, NewFactory(1), 0, 1)
	require.NoError(t, err)

	train, err := NewFactory(1).CreateAt(g, "B", network.North)
	require.NoError(t, err)
	fleet.Add(train)

	next, err := fleet.NextStations(train.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, next)

	_, err = fleet.NextStations(404)
	assert.ErrorIs(t, err, ErrTrainNotFound)
	_, err = fleet.Summary(404)
	assert.ErrorIs(t, err, ErrTrainNotFound)
}

func TestFleetCancelledContext(t *testing.T) {
	fleet, err := NewFleet(lineGraph(), NewFactory(1), 3, 1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, fleet.Tick(ctx), context.Canceled)
	assert.Zero(t, fleet.Ticks())
}

func TestFleetEmptyGraph(t *testing.T) {
	_, err := NewFleet(network.NewGraph(), NewFactory(1), 2, 1)
	assert.ErrorIs(t, err, ErrEmptyGraph)

	_, err = NewFleet(lineGraph(), NewFactory(1), -1, 1)
	assert.Error(t, err)
}

func TestFleetTickReportsInconsistency(t *testing.T) {
	fleet, err := NewFleet(lineGraph(), NewFactory(1), 0, 2)
	require.NoError(t, err)
	fleet.Add(&Train{ID: 1, Station: "Ghost", Direction: network.North, Colour: "red", random: NewRandomSource(1, 1)})

	assert.ErrorIs(t, fleet.Tick(context.Background()), ErrInternalInconsistency)
}

func TestFleetDetailMatchesSummary(t *testing.T) {
	g := lineGraph()
	fleet, err := NewFleet(g, NewFactory(4), 6, 2)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			assert.NoError(t, fleet.Tick(context.Background()))
		}
	}()

	for i := 0; i < 200; i++ {
		summary, next, err := fleet.Detail(1 + i%6)
		require.NoError(t, err)

		direction, err := network.ParseDirection(summary.Direction)
		require.NoError(t, err)

		links, err := g.LinksFor(summary.Station, direction, summary.Colour)
		require.NoError(t, err)

		expected := []string{}
		for _, link := range links {
			expected = append(expected, link.Target)
		}
		assert.Equal(t, expected, next)
	}

	wg.Wait()

	_, _, err = fleet.Detail(404)
	assert.ErrorIs(t, err, ErrTrainNotFound)
}
