// Package clock abstracts the ambient "current time" dependency so that
// timestamp stamping and window comparisons are deterministic in tests.
package clock

import "time"

// Now is the clock contract: a single function returning the current time.
type Now func() time.Time

// System returns the wall clock in UTC.
func System() time.Time {
	return time.Now().UTC()
}

// Fixed returns a clock frozen at t. Intended for tests.
func Fixed(t time.Time) Now {
	return func() time.Time { return t }
}
