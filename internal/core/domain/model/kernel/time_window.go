package kernel

import (
	"fmt"
	"time"

	"warehouse/internal/pkg/errs"
)

// ErrTimeWindowIsNotConstructed indicates that a TimeWindow was not created
// through the NewTimeWindow constructor.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError("TimeWindow must be created via NewTimeWindow")

// TimeWindow is a value object representing a half-open scheduling interval
// [start, end). The end instant is exclusive, so two back-to-back windows
// (one ending exactly when the other starts) do not overlap. This is the
// property that allows back-to-back bookings of the same driver or vehicle
// without false conflicts.
//
// TimeWindow is immutable and must be constructed via NewTimeWindow.
type TimeWindow struct {
	start time.Time
	end   time.Time

	isConstructed bool
}

// NewTimeWindow creates a TimeWindow covering [start, end).
// Both instants are required and start must be strictly before end;
// a zero-length window would never overlap anything and is rejected.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if start.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("start")
	}
	if end.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("end")
	}
	if !start.Before(end) {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"time window",
			fmt.Errorf("start %s is not before end %s", start.Format(time.RFC3339), end.Format(time.RFC3339)),
		)
	}

	return TimeWindow{
		start:         start,
		end:           end,
		isConstructed: true,
	}, nil
}

// Start returns the inclusive start of the window.
func (w TimeWindow) Start() time.Time {
	return w.start
}

// End returns the exclusive end of the window.
func (w TimeWindow) End() time.Time {
	return w.end
}

// Duration returns the length of the window.
func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Overlaps reports whether two half-open windows intersect:
// w.start < other.end && w.end > other.start.
// Windows that merely touch at a boundary do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.Before(other.end) && w.end.After(other.start)
}

// IsEqual compares two windows by their instants.
func (w TimeWindow) IsEqual(other TimeWindow) bool {
	return w.start.Equal(other.start) && w.end.Equal(other.end)
}

// Validate checks if the TimeWindow is properly constructed.
func (w TimeWindow) Validate() error {
	if !w.isConstructed {
		return ErrTimeWindowIsNotConstructed
	}
	return nil
}

// String returns the window in "[start, end)" RFC 3339 form.
func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s, %s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}
