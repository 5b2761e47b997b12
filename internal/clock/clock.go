package clock

import "time"

//go:generate mockgen -destination=mock/mock_clock.go -package=mockclock -source=clock.go

// TimeProvider supplies the timestamp captured at each tick boundary
type TimeProvider interface {
	Now() time.Time
}

// Real reads the system clock. time.Now carries a monotonic reading, so
// differences between two Now values are immune to wall clock jumps.
type Real struct{}

// Now returns the current time
func (Real) Now() time.Time {
	return time.Now()
}
