package model

import (
	"context"
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// ErrEmptyDomain is returned when a world is built from a table with no cells
var ErrEmptyDomain = errors.New("world cannot be empty")

// World is an immutable generation of the automaton over a fixed set of positions.
// Stepping a world returns a new one; the receiver is never modified.
type World struct {
	cells           map[Position]Cell
	generationCount int
	rule            rules.Rule
}

// Option configures a world at construction
type Option func(*World)

// WithRule evolves the world with a rule other than Conway's
func WithRule(rule rules.Rule) Option {
	return func(w *World) {
		w.rule = rule
	}
}

// Bounds is the bounding rectangle of a world's domain, inclusive on both ends
type Bounds struct {
	MinX, MaxX, MinY, MaxY int
}

// NewWorld creates generation 0 of a world from a table of statuses.
// The row index becomes X and the column index becomes Y. Dead cells are kept
// and take part in neighbour counts; no other position is ever added.
func NewWorld(initialState [][]Status, opts ...Option) (*World, error) {
	if len(initialState) == 0 {
		return nil, errors.Wrap(ErrEmptyDomain, "[NewWorld] no rows")
	}

	cells := make(map[Position]Cell)
	for x, row := range initialState {
		for y, status := range row {
			cells[Position{X: x, Y: y}] = NewCell(status)
		}
	}
	if len(cells) == 0 {
		return nil, errors.Wrapf(ErrEmptyDomain, "[NewWorld] %d rows without cells", len(initialState))
	}

	w := &World{cells: cells, rule: rules.Conway}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// GenerationCount returns how many generations separate this world from its initial state
func (w *World) GenerationCount() int {
	return w.generationCount
}

// Rule returns the rule the world evolves with
func (w *World) Rule() rules.Rule {
	return w.rule
}

// Len returns the number of positions in the domain
func (w *World) Len() int {
	return len(w.cells)
}

// Cell returns the cell at a position and whether the position is in the domain
func (w *World) Cell(p Position) (Cell, bool) {
	c, ok := w.cells[p]
	return c, ok
}

// Positions returns the domain sorted by X then Y
func (w *World) Positions() []Position {
	positions := make([]Position, 0, len(w.cells))
	for p := range w.cells {
		positions = append(positions, p)
	}
	slices.SortFunc(positions, func(a, b Position) int {
		switch {
		case a.less(b):
			return -1
		case b.less(a):
			return 1
		}
		return 0
	})
	return positions
}

// LivingCells returns the number of alive cells
func (w *World) LivingCells() (count int) {
	for _, c := range w.cells {
		if c.IsAlive() {
			count++
		}
	}
	return
}

// Bounds returns the bounding rectangle of the domain
func (w *World) Bounds() Bounds {
	var (
		b     Bounds
		first = true
	)
	for p := range w.cells {
		if first {
			b = Bounds{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}
			first = false
			continue
		}
		b.MinX = min(b.MinX, p.X)
		b.MaxX = max(b.MaxX, p.X)
		b.MinY = min(b.MinY, p.Y)
		b.MaxY = max(b.MaxY, p.Y)
	}
	return b
}

// CalculateAliveNeighbours counts the alive cells among the 8 positions adjacent to p.
// Positions outside the domain contribute nothing, and a position the world
// does not own has no neighbours at all.
func (w *World) CalculateAliveNeighbours(p Position) int {
	if _, ok := w.cells[p]; !ok {
		return 0
	}

	count := 0
	for _, n := range p.Neighbours() {
		if c, ok := w.cells[n]; ok && c.IsAlive() {
			count++
		}
	}
	return count
}

// CalculateNextGeneration evolves every cell against the current generation and
// returns the result as a new world with the same domain.
func (w *World) CalculateNextGeneration() (*World, error) {
	next := make(map[Position]Cell, len(w.cells))
	for p, c := range w.cells {
		next[p] = c.EvolveWith(w.rule, w.CalculateAliveNeighbours(p))
	}
	return w.successor(next), nil
}

// CalculateNextGenerationParallel computes the same generation as CalculateNextGeneration,
// splitting the domain across workers. workers <= 0 uses one worker per CPU and
// no more workers than positions are started.
func (w *World) CalculateNextGenerationParallel(ctx context.Context, workers int) (*World, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	positions := w.Positions()
	workers = min(workers, len(positions))

	var (
		evolved   = make([]Cell, len(positions))
		perWorker = (len(positions) + workers - 1) / workers // Ceiling division
	)

	eg, ctx := errgroup.WithContext(ctx)
	for i := range workers {
		var (
			start = i * perWorker
			end   = min(start+perWorker, len(positions))
		)
		if start >= len(positions) {
			break
		}

		eg.Go(func() error {
			for j := start; j < end; j++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				p := positions[j]
				evolved[j] = w.cells[p].EvolveWith(w.rule, w.CalculateAliveNeighbours(p))
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrapf(err, "[CalculateNextGenerationParallel] generation %d", w.generationCount+1)
	}

	next := make(map[Position]Cell, len(positions))
	for j, p := range positions {
		next[p] = evolved[j]
	}
	return w.successor(next), nil
}

func (w *World) successor(cells map[Position]Cell) *World {
	return &World{
		cells:           cells,
		generationCount: w.generationCount + 1,
		rule:            w.rule,
	}
}

// Equal reports whether two worlds hold the same cells at the same positions.
// The generation count is not compared.
func (w *World) Equal(other *World) bool {
	if w == nil || other == nil {
		return w == other
	}
	if len(w.cells) != len(other.cells) {
		return false
	}
	for p, c := range w.cells {
		if oc, ok := other.cells[p]; !ok || oc != c {
			return false
		}
	}
	return true
}

// Hash returns an MD5 digest of the domain and its cell states.
// Equal worlds have equal hashes.
func (w *World) Hash() string {
	var (
		h   = md5.New()
		buf [2*binary.MaxVarintLen64 + 1]byte
	)
	for _, p := range w.Positions() {
		n := binary.PutVarint(buf[:], int64(p.X))
		n += binary.PutVarint(buf[n:], int64(p.Y))
		buf[n] = byte(w.cells[p].Status())
		h.Write(buf[:n+1])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the domain one X row per line, 'O' for alive, '.' for dead and ' ' outside the domain
func (w *World) String() string {
	var (
		sb strings.Builder
		b  = w.Bounds()
	)
	for x := b.MinX; x <= b.MaxX; x++ {
		for y := b.MinY; y <= b.MaxY; y++ {
			c, ok := w.cells[Position{X: x, Y: y}]
			switch {
			case !ok:
				sb.WriteByte(' ')
			case c.IsAlive():
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
