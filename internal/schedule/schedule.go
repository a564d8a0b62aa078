// Package schedule computes which contacts should be congratulated in the
// coming week and renders the result as an iCalendar feed.
package schedule

import (
	"math"
	"sort"
	"time"

	"github.com/tartampluch/go-phonebook/internal/book"
	"github.com/tartampluch/go-phonebook/internal/config"
)

// Entry is one upcoming congratulation.
type Entry struct {
	// Name is the contact's identity key.
	Name string

	// BirthdayThisYear is the birthday's month/day projected onto the
	// reference year.
	BirthdayThisYear time.Time

	// CongratulationDate is the day the birthday should actually be
	// acknowledged: the birthday itself, or the following Monday when it
	// lands on a weekend.
	CongratulationDate time.Time

	// DaysUntil is the whole-day distance from the reference date to the
	// congratulation date, after the weekend shift.
	DaysUntil int
}

// Upcoming returns the congratulation list for the records, relative to
// today. Per record with a birthday set:
//
//  1. The birthday is projected onto today's year.
//  2. A Saturday birthday shifts the congratulation forward 2 days, a
//     Sunday birthday 1 day.
//  3. The record is included iff the shifted day count lies in
//     [0, UpcomingWindowDays]. Birthdays already passed this year are
//     excluded; the window never wraps into next year.
//
// Records without a birthday are skipped. The result is sorted by
// congratulation date, then name, and is empty (not an error) when nothing
// falls inside the window.
func Upcoming(records []*book.Record, today time.Time) []Entry {
	loc := today.Location()
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)

	var entries []Entry
	for _, rec := range records {
		bday, ok := rec.Birthday()
		if !ok {
			continue
		}

		// Feb 29 normalizes to Mar 1 in non-leap years, matching Go's
		// time.Date behavior.
		thisYear := time.Date(start.Year(), bday.Month(), bday.Day(), 0, 0, 0, 0, loc)
		days := wholeDays(start, thisYear)

		switch thisYear.Weekday() {
		case time.Saturday:
			days += config.ShiftSaturdayDays
		case time.Sunday:
			days += config.ShiftSundayDays
		}

		if days < 0 || days > config.UpcomingWindowDays {
			continue
		}

		entries = append(entries, Entry{
			Name:               rec.Name(),
			BirthdayThisYear:   thisYear,
			CongratulationDate: start.AddDate(0, 0, days),
			DaysUntil:          days,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].CongratulationDate.Equal(entries[j].CongratulationDate) {
			return entries[i].CongratulationDate.Before(entries[j].CongratulationDate)
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// wholeDays counts calendar days from a to b. Both arguments are midnight
// values in the same location; rounding absorbs DST offsets.
func wholeDays(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}
