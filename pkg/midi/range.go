package midi

// tickRange is a window of ticks one quarter note wide that can be stepped
// forward a quarter at a time.
type tickRange struct {
	cnt int

	lowerBound uint64
	upperBound uint64
}

func newTickRange(lowerBound uint64, upperBound uint64) *tickRange {
	return &tickRange{
		lowerBound: lowerBound,
		upperBound: upperBound,
	}
}

func (m *tickRange) stepBy(n int) {
	m.cnt += n
	step := m.upperBound - m.lowerBound

	m.upperBound += step * uint64(n)
	m.lowerBound += step * uint64(n)
}

func (m *tickRange) contains(item uint64) bool {
	return item >= m.lowerBound && item < m.upperBound
}

// position of the window inside a 4/4 bar
func (m *tickRange) position() int {
	return m.cnt % 4
}

// QuarterPosition returns which quarter of a 4/4 bar (0 to 3) the absolute
// tick falls on.
func QuarterPosition(absTicks uint64, ticksPerQuarterNote uint16) int {
	if ticksPerQuarterNote == 0 {
		return 0
	}
	n := uint64(ticksPerQuarterNote)
	r := newTickRange(0, n)

	for !r.contains(absTicks) {
		if absTicks >= n {
			r.stepBy(int(absTicks / n))
		} else {
			r.stepBy(1)
		}
	}

	return r.position()
}
