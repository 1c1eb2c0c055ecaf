// Package calendar expands a month of meetings into a display grid. The
// grid always covers whole weeks, so days from the neighbouring months pad
// the first and last rows.
package calendar

import (
	"sort"
	"time"

	"github.com/atelier-crm/atelier/internal/domain/meeting"
)

// View selects the calendar's display granularity.
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDay   View = "day"
)

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	switch v {
	case ViewMonth, ViewWeek, ViewDay:
		return true
	}
	return false
}

// Day is one cell of the calendar grid.
type Day struct {
	Date     time.Time         `json:"date"`
	InMonth  bool              `json:"in_month"`
	Today    bool              `json:"today"`
	Meetings []meeting.Meeting `json:"meetings"`
}

// SameDay reports whether two instants fall on the same calendar date.
// Only the date components are compared; the time of day is ignored.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MonthGrid expands the month containing ref into a grid of whole weeks
// starting on Sunday. Every meeting whose date falls on a grid day is
// bucketed into that day, sorted soonest first; a day with no meetings gets
// an empty bucket, not a nil one.
func MonthGrid(ref, now time.Time, meetings []meeting.Meeting) []Day {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))

	last := first.AddDate(0, 1, -1)
	end := last.AddDate(0, 0, 6-int(last.Weekday()))

	days := make([]Day, 0, 42)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		bucket := make([]meeting.Meeting, 0)
		for _, m := range meetings {
			if SameDay(m.Date, d) {
				bucket = append(bucket, m.Clone())
			}
		}
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Date.Before(bucket[j].Date)
		})
		days = append(days, Day{
			Date:     d,
			InMonth:  d.Month() == ref.Month(),
			Today:    SameDay(d, now),
			Meetings: bucket,
		})
	}
	return days
}

// Navigate moves the reference date by delta units of the current view.
// Month navigation uses calendar months, so the day of month normalizes the
// way time.AddDate does.
func Navigate(ref time.Time, view View, delta int) time.Time {
	switch view {
	case ViewWeek:
		return ref.AddDate(0, 0, 7*delta)
	case ViewDay:
		return ref.AddDate(0, 0, delta)
	default:
		return ref.AddDate(0, delta, 0)
	}
}

// Preview caps a day's meeting list for display. It returns the meetings to
// show and how many were held back.
func Preview(meetings []meeting.Meeting, limit int) ([]meeting.Meeting, int) {
	if limit < 0 {
		limit = 0
	}
	if len(meetings) <= limit {
		return meetings, 0
	}
	return meetings[:limit], len(meetings) - limit
}
