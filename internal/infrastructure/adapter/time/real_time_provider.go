package time

import (
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
)

// RealTimeProvider reads the system clock. Times are returned in UTC so that
// stored timestamps and calendar dates never depend on the host time zone.
type RealTimeProvider struct{}

// NewRealTimeProvider creates a new real time provider
func NewRealTimeProvider() core.TimeProvider {
	return RealTimeProvider{}
}

// Now returns the current time in UTC
func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// Since returns the time elapsed since t
func (RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}
