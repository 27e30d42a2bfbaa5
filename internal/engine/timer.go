package engine

import "time"

// ClueTimer is the per-clue countdown, modeled without goroutines or clocks:
// the driver feeds it elapsed time and reads the remainder. Accumulation
// freezes while Paused is set — the countdown does not advance while the
// clue is being read aloud.
type ClueTimer struct {
	Limit   time.Duration
	Paused  bool
	elapsed time.Duration
}

func NewClueTimer(limit time.Duration) *ClueTimer {
	return &ClueTimer{Limit: limit}
}

func (t *ClueTimer) Tick(d time.Duration) {
	if t.Paused {
		return
	}
	t.elapsed += d
	if t.elapsed > t.Limit {
		t.elapsed = t.Limit
	}
}

func (t *ClueTimer) Remaining() time.Duration {
	return t.Limit - t.elapsed
}

func (t *ClueTimer) Expired() bool {
	return t.elapsed >= t.Limit
}

func (t *ClueTimer) Reset() {
	t.elapsed = 0
	t.Paused = false
}
