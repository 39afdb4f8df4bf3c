// Package budget implements the envelope budgeting calculation engine:
// assignment arithmetic, money moves, overspending classification, credit
// card payment funding and the Ready-to-Assign figure. Every function is
// pure; validation outcomes are returned as data, never as errors.
package budget

import "time"

// monthLayout is the fixed-width month format ("YYYY-MM"). Because it is
// zero padded, lexicographic comparison orders months correctly.
const monthLayout = "2006-01"

// Clock provides the current month. Injected so tests can fix "today".
type Clock interface {
	CurrentMonth() string
}

type systemClock struct{}

func (systemClock) CurrentMonth() string {
	return time.Now().UTC().Format(monthLayout)
}

// SystemClock returns a Clock backed by wall-clock time.
func SystemClock() Clock { return systemClock{} }

// FixedClock returns a Clock pinned to the given month, for tests and
// deterministic replays.
func FixedClock(month string) Clock { return fixedClock(month) }

type fixedClock string

func (c fixedClock) CurrentMonth() string { return string(c) }

// IsValidMonth reports whether s is a well-formed "YYYY-MM" month.
func IsValidMonth(s string) bool {
	_, err := time.Parse(monthLayout, s)
	return err == nil
}

// IsPastMonth reports whether month sorts before current.
func IsPastMonth(month, current string) bool { return month < current }

// IsCurrentMonth reports whether month equals current.
func IsCurrentMonth(month, current string) bool { return month == current }

// IsFutureMonth reports whether month sorts after current.
func IsFutureMonth(month, current string) bool { return month > current }

// PreviousMonth returns the month immediately before the given one.
// Malformed input is returned unchanged.
func PreviousMonth(month string) string {
	t, err := time.Parse(monthLayout, month)
	if err != nil {
		return month
	}
	return t.AddDate(0, -1, 0).Format(monthLayout)
}

// NextMonth returns the month immediately after the given one.
// Malformed input is returned unchanged.
func NextMonth(month string) string {
	t, err := time.Parse(monthLayout, month)
	if err != nil {
		return month
	}
	return t.AddDate(0, 1, 0).Format(monthLayout)
}

// MonthOf formats a point in time as its "YYYY-MM" month.
func MonthOf(t time.Time) string {
	return t.Format(monthLayout)
}
