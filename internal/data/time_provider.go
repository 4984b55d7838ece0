package data

import "time"

// TimeProvider abstracts the clock so repositories can stamp created_at and
// updated_at with a frozen time in tests.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current system time.
func (*RealTimeProvider) Now() time.Time { return time.Now() }

// TimeProviderFunc adapts a plain function to TimeProvider.
type TimeProviderFunc func() time.Time

// Now returns the result of calling the wrapped function.
func (f TimeProviderFunc) Now() time.Time { return f() }
