package snake

import (
	"fmt"
	"strings"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirRight && d <= DirUp
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// Delta returns the unit step for d. The y axis points up.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection accepts English or Spanish direction names.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "arriba":
		return DirUp, nil
	case "down", "abajo":
		return DirDown, nil
	case "left", "izquierda":
		return DirLeft, nil
	case "right", "derecha":
		return DirRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
