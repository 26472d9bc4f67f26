package rules

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidRule is returned when a rule string cannot be parsed
var ErrInvalidRule = errors.New("invalid rule")

// maxNeighbours is the size of the Moore neighbourhood
const maxNeighbours = 8

// Rule is a life-like transition rule expressed as the neighbour counts
// that bring a dead cell to life (Birth) and keep a live cell alive (Survival)
type Rule struct {
	Birth    [maxNeighbours + 1]bool
	Survival [maxNeighbours + 1]bool
}

/*
Conway is the standard Game of Life rule, B3/S23.

A live cell survives with 2 or 3 neighbours, a dead cell is born with exactly 3.
*/
var Conway = Rule{
	Birth:    [maxNeighbours + 1]bool{3: true},
	Survival: [maxNeighbours + 1]bool{2: true, 3: true},
}

// Next returns whether a cell with the given state and neighbour count is alive in the next generation.
// Counts outside [0, 8] never match.
func (r Rule) Next(alive bool, neighbours int) bool {
	if neighbours < 0 || neighbours > maxNeighbours {
		return false
	}
	if alive {
		return r.Survival[neighbours]
	}
	return r.Birth[neighbours]
}

// String renders the rule in B/S notation
func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteByte('B')
	for n, ok := range r.Birth {
		if ok {
			sb.WriteString(strconv.Itoa(n))
		}
	}
	sb.WriteString("/S")
	for n, ok := range r.Survival {
		if ok {
			sb.WriteString(strconv.Itoa(n))
		}
	}
	return sb.String()
}

// ParseRule parses a rule in B/S notation, e.g. "B3/S23" or "b36/s23"
func ParseRule(s string) (Rule, error) {
	var rule Rule

	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return rule, errors.Wrapf(ErrInvalidRule, "[ParseRule] expected B<digits>/S<digits>, got: %q", s)
	}

	for _, part := range parts {
		if part == "" {
			return rule, errors.Wrapf(ErrInvalidRule, "[ParseRule] empty section in: %q", s)
		}

		var counts *[maxNeighbours + 1]bool
		switch part[0] {
		case 'B':
			counts = &rule.Birth
		case 'S':
			counts = &rule.Survival
		default:
			return rule, errors.Wrapf(ErrInvalidRule, "[ParseRule] unknown section %q in: %q", part[:1], s)
		}

		for _, r := range part[1:] {
			if r < '0' || r > '0'+maxNeighbours {
				return rule, errors.Wrapf(ErrInvalidRule, "[ParseRule] bad neighbour count %q in: %q", r, s)
			}
			counts[r-'0'] = true
		}
	}

	if parts[0][0] == parts[1][0] {
		return rule, errors.Wrapf(ErrInvalidRule, "[ParseRule] duplicate section in: %q", s)
	}

	return rule, nil
}
