package gateway

import "time"

// SystemClock reports the wall-clock time, satisfying the usecase Clock
// contract.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
