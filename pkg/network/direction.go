package network

import "fmt"

type Direction string

const (
	North Direction = "N"
	South Direction = "S"
)

var Directions = []Direction{North, South}

func (d Direction) Invert() Direction {
	if d == North {
		return South
	}

	return North
}

// Name returns the direction spelled out, as shown in reports
func (d Direction) Name() string {
	if d == North {
		return "North"
	}

	return "South"
}

func (d Direction) Valid() bool {
	return d == North || d == South
}

func ParseDirection(token string) (Direction, error) {
	switch token {
	case "N", "North":
		return North, nil
	case "S", "South":
		return South, nil
	}

	return "", fmt.Errorf("unknown direction %q", token)
}
