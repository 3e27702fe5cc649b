package network

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

var (
	ErrNotFound           = errors.New("station not found")
	ErrInvalidProbability = errors.New("delay probability must be within [0,1]")
)

type Link struct {
	Colour    string
	Direction Direction
	Target    string
}

type Station struct {
	Name             string
	DelayProbability float64

	Links []Link
}

// Graph is the station connectivity multigraph. It is not safe for
// concurrent mutation, simulator.Fleet serializes access when trains run
// in parallel.
type Graph struct {
	stations map[string]*Station
	order    []string
}

func NewGraph() *Graph {
	return &Graph{
		stations: map[string]*Station{},
	}
}

// AddLink adds the link from -> to and its mirror to -> from in the
// opposite direction. Either station is created with a delay of 0 if it
// does not exist yet. Repeated calls add parallel links.
func (g *Graph) AddLink(from string, to string, colour string, direction Direction) {
	fromStation := g.ensureStation(from)
	toStation := g.ensureStation(to)

	fromStation.Links = append(fromStation.Links, Link{
		Colour:    colour,
		Direction: direction,
		Target:    to,
	})
	toStation.Links = append(toStation.Links, Link{
		Colour:    colour,
		Direction: direction.Invert(),
		Target:    from,
	})
}

// AddStation registers a station with no links. Trains starting there have
// no line and never move.
func (g *Graph) AddStation(name string) {
	g.ensureStation(name)
}

func (g *Graph) ensureStation(name string) *Station {
	if station, exists := g.stations[name]; exists {
		return station
	}

	station := &Station{Name: name}
	g.stations[name] = station
	g.order = append(g.order, name)

	return station
}

func (g *Graph) SetDelay(name string, probability float64) error {
	station, err := g.Find(name)
	if err != nil {
		return err
	}

	if math.IsNaN(probability) || probability < 0 || probability > 1 {
		return fmt.Errorf("station %s delay %v: %w", name, probability, ErrInvalidProbability)
	}

	station.DelayProbability = probability

	return nil
}

func (g *Graph) Find(name string) (*Station, error) {
	station, exists := g.stations[name]
	if !exists {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}

	return station, nil
}

// LinksFor returns the outgoing links of a station heading in direction on
// the given line
func (g *Graph) LinksFor(name string, direction Direction, colour string) ([]Link, error) {
	return g.links(name, func(link Link) bool {
		return link.Direction == direction && link.Colour == colour
	})
}

// LinksInDirection returns the outgoing links of a station heading in
// direction on any line
func (g *Graph) LinksInDirection(name string, direction Direction) ([]Link, error) {
	return g.links(name, func(link Link) bool {
		return link.Direction == direction
	})
}

func (g *Graph) links(name string, match func(Link) bool) ([]Link, error) {
	station, err := g.Find(name)
	if err != nil {
		return nil, err
	}

	var links []Link
	for _, link := range station.Links {
		if match(link) {
			links = append(links, link)
		}
	}

	return links, nil
}

// Stations returns station names in creation order
func (g *Graph) Stations() []string {
	return slices.Clone(g.order)
}

func (g *Graph) Len() int {
	return len(g.order)
}

func (g *Graph) Colours() []string {
	var colours []string

	for _, name := range g.order {
		for _, link := range g.stations[name].Links {
			if !slices.Contains(colours, link.Colour) {
				colours = append(colours, link.Colour)
			}
		}
	}

	return colours
}
