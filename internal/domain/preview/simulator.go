package preview

import (
	"math"
	"time"

	"github.com/KirkDiggler/trigger-overlay/internal/clock"
	"github.com/KirkDiggler/trigger-overlay/internal/domain/datasource"
)

// Simulator replaces live countdowns with a looping one while an element
// is previewed. The zero state (no start) begins a fresh loop on the next
// Apply.
type Simulator struct {
	clock clock.TimeProvider

	startValue *float64
	startTime  *time.Time
}

// NewSimulator creates a simulator reading time from tp
func NewSimulator(tp clock.TimeProvider) *Simulator {
	if tp == nil {
		tp = clock.Real{}
	}
	return &Simulator{clock: tp}
}

// Apply overwrites ds.Duration and ds.Cooldown with the simulated remaining
// time. The first call after a reset captures the loop length as the
// smaller of ds.Duration and ds.Cooldown.
func (s *Simulator) Apply(ds *datasource.DataSource) {
	now := s.clock.Now()

	if s.startValue == nil || s.startTime == nil {
		value := math.Min(ds.Duration, ds.Cooldown)
		s.startValue = &value
		s.startTime = &now
	}

	remaining := s.remaining(now)
	ds.Duration = remaining
	ds.Cooldown = remaining
}

func (s *Simulator) remaining(now time.Time) float64 {
	reset := *s.startValue
	if reset <= 0 || math.IsNaN(reset) {
		return 0
	}

	elapsed := now.Sub(*s.startTime).Seconds()
	if elapsed <= reset {
		return reset - max(elapsed, 0)
	}

	wraps := math.Floor(elapsed / reset)
	advanced := s.startTime.Add(time.Duration(wraps * reset * float64(time.Second)))
	s.startTime = &advanced

	return reset - math.Mod(elapsed, reset)
}

// Reset clears the loop so the next preview starts from its natural value
func (s *Simulator) Reset() {
	s.startValue = nil
	s.startTime = nil
}

// Active reports whether a loop is in progress
func (s *Simulator) Active() bool {
	return s.startTime != nil
}

// StartTime returns the start of the current loop period
func (s *Simulator) StartTime() (time.Time, bool) {
	if s.startTime == nil {
		return time.Time{}, false
	}
	return *s.startTime, true
}
