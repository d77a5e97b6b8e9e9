package game

import (
	"fmt"
	"math"
)

// Position is a grid cell. X grows eastward and Y grows southward from the top-left corner.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Move returns the neighbouring cell in direction action; Stop returns p.
func (p Position) Move(action Action) Position {
	switch action {
	case North:
		return Position{p.X, p.Y - 1}
	case South:
		return Position{p.X, p.Y + 1}
	case East:
		return Position{p.X + 1, p.Y}
	case West:
		return Position{p.X - 1, p.Y}
	default:
		return p
	}
}

// Directions lists the moving actions in enumeration order.
var Directions = []Action{North, South, East, West}

// Reverse returns the opposite direction. Stop reverses to itself.
func Reverse(action Action) Action {
	switch action {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return action
	}
}

func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func Euclidean(a, b Position) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// nearest returns the manhattan distance from p to the closest target, false if there is none.
func nearest(p Position, targets []Position) (int, bool) {
	if len(targets) == 0 {
		return 0, false
	}
	best := Manhattan(p, targets[0])
	for _, target := range targets[1:] {
		if d := Manhattan(p, target); d < best {
			best = d
		}
	}
	return best, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
