package model

const (
	defaultHistorySize = 5
	maxDetectedPeriod  = 3
)

// History keeps the hashes of recently recorded worlds to detect still lifes and short oscillators
type History struct {
	size   int
	hashes []string
}

// NewHistory creates a history remembering the last size worlds
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Record adds a world to the history, dropping the oldest entry when full
func (h *History) Record(w *World) {
	h.hashes = append(h.hashes, w.Hash())

	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Len returns the number of recorded worlds
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets every recorded world
func (h *History) Reset() {
	h.hashes = nil
}

// Period returns n when w matches the world recorded n entries ago, for n up to 3, or 0
func (h *History) Period(w *World) int {
	current := w.Hash()
	for n := 1; n <= maxDetectedPeriod && n <= len(h.hashes); n++ {
		if h.hashes[len(h.hashes)-n] == current {
			return n
		}
	}
	return 0
}

// IsStagnant reports whether w is a still life or a period 2 or 3 oscillator of the recorded worlds
func (h *History) IsStagnant(w *World) bool {
	return h.Period(w) > 0
}
