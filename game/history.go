package game

import "github.com/sheikhrachel/go-life/model"

const (
	historySize = 5
	// A board repeating any of this many recent states is in a cycle of period <= 3
	cycleWindow = 3
)

// history keeps recent board hashes for cycle detection
type history struct {
	hashes []string
}

// repeats reports whether b matches one of the last cycleWindow recorded states
func (h *history) repeats(b *model.Board) bool {
	current := b.Hash()
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-cycleWindow; i-- {
		if h.hashes[i] == current {
			return true
		}
	}
	return false
}

// record adds b's hash and drops the oldest beyond historySize
func (h *history) record(b *model.Board) {
	h.hashes = append(h.hashes, b.Hash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}
