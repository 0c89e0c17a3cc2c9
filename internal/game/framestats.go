package game

// frameStats records the last N frame deltas into a ring buffer so the
// overlay can show a smoothed frames-per-second readout. It is only touched
// from the game loop, so no locking is needed.
type frameStats struct {
	buffer    []float64
	nextIndex int
	filled    int
}

func newFrameStats(ringSize int) *frameStats {
	return &frameStats{
		buffer: make([]float64, ringSize),
	}
}

func (s *frameStats) record(delta float64) {
	s.buffer[s.nextIndex] = delta
	s.nextIndex++
	if s.nextIndex >= len(s.buffer) {
		s.nextIndex = 0
	}
	if s.filled < len(s.buffer) {
		s.filled++
	}
}

// averageFPS returns the reciprocal of the mean recorded delta, or 0 until
// the first delta lands.
func (s *frameStats) averageFPS() float64 {
	if s.filled == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < s.filled; i++ {
		sum += s.buffer[i]
	}
	if sum <= 0 {
		return 0
	}
	return float64(s.filled) / sum
}
