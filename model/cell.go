package model

import "github.com/sheikhrachel/go-life/rules"

// Status is the state of a single cell
type Status uint8

const (
	Dead Status = iota
	Alive
)

func (s Status) String() string {
	switch s {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// Cell is an immutable cell value. Evolving a cell returns a new one.
type Cell struct {
	status Status
}

// NewCell creates a cell holding the given status
func NewCell(status Status) Cell {
	return Cell{status: status}
}

// Status returns the status of the cell
func (c Cell) Status() Status {
	return c.status
}

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return c.status == Alive
}

// Evolve returns the next cell under Conway's rules for the given neighbour count
func (c Cell) Evolve(neighbours int) Cell {
	return c.EvolveWith(rules.Conway, neighbours)
}

// EvolveWith returns the next cell under the given rule
func (c Cell) EvolveWith(rule rules.Rule, neighbours int) Cell {
	if rule.Next(c.IsAlive(), neighbours) {
		return NewCell(Alive)
	}
	return NewCell(Dead)
}
