package model

// DefaultHistoryDepth keeps enough generations to catch still lifes and period 2 and 3 oscillators
const DefaultHistoryDepth = 5

// History stores recent generation hashes for cycle detection
type History struct {
	depth  int
	hashes []string
}

// NewHistory creates a history remembering the last depth hashes
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	return &History{depth: depth, hashes: make([]string, 0, depth)}
}

// Observe reports whether hash matches a recently recorded generation, then records it
func (h *History) Observe(hash string) (stagnant bool) {
	for _, seen := range h.hashes {
		if seen == hash {
			stagnant = true
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	// Keep only the last depth states
	if len(h.hashes) > h.depth {
		h.hashes = h.hashes[1:]
	}
	return
}

// Len returns the number of recorded hashes
func (h *History) Len() int {
	return len(h.hashes)
}

// Clear forgets every recorded hash
func (h *History) Clear() {
	h.hashes = h.hashes[:0]
}
