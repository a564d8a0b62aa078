package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-phonebook/internal/book"
)

func recordWithBirthday(t *testing.T, name, birthday string) *book.Record {
	t.Helper()
	rec := book.NewRecord(name)
	require.NoError(t, rec.SetBirthday(birthday))
	return rec
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestUpcoming_WeekendShift verifies the weekend policy against a fixed week:
// Monday 2024-06-10 as "today".
func TestUpcoming_WeekendShift(t *testing.T) {
	today := date(2024, time.June, 10) // Monday

	tests := []struct {
		name         string
		birthday     string
		wantIncluded bool
		wantBday     time.Time
		wantCongrats time.Time
		wantDays     int
		desc         string
	}{
		{
			name:         "Saturday birthday shifts to Monday",
			birthday:     "15.06.1990", // 2024-06-15 is a Saturday
			wantIncluded: true,
			wantBday:     date(2024, time.June, 15),
			wantCongrats: date(2024, time.June, 17),
			wantDays:     7,
			desc:         "daysUntil 5 shifts +2 to 7, still inside the window",
		},
		{
			name:         "Sunday birthday shifts to Monday",
			birthday:     "16.06.1985", // 2024-06-16 is a Sunday
			wantIncluded: true,
			wantBday:     date(2024, time.June, 16),
			wantCongrats: date(2024, time.June, 17),
			wantDays:     7,
			desc:         "daysUntil 6 shifts +1 to 7",
		},
		{
			name:         "weekday birthday keeps its day",
			birthday:     "12.06.2000", // 2024-06-12 is a Wednesday
			wantIncluded: true,
			wantBday:     date(2024, time.June, 12),
			wantCongrats: date(2024, time.June, 12),
			wantDays:     2,
			desc:         "no shift off the weekend",
		},
		{
			name:         "birthday today is included",
			birthday:     "10.06.1970",
			wantIncluded: true,
			wantBday:     date(2024, time.June, 10),
			wantCongrats: date(2024, time.June, 10),
			wantDays:     0,
			desc:         "daysUntil 0 sits on the inclusive lower bound",
		},
		{
			name:         "Thursday ten days out is excluded",
			birthday:     "20.06.1995", // daysUntil 10, no shift
			wantIncluded: false,
			desc:         "outside the 7-day window",
		},
		{
			name:         "eighth day is excluded",
			birthday:     "18.06.1995", // 2024-06-18 Tuesday, daysUntil 8
			wantIncluded: false,
			desc:         "window bound is inclusive at 7, not 8",
		},
		{
			name:         "passed birthday does not wrap to next year",
			birthday:     "03.06.1990", // 2024-06-03 Monday, daysUntil -7
			wantIncluded: false,
			desc:         "negative day counts are excluded, no wrap",
		},
		{
			name:         "Saturday two days past shifts onto today",
			birthday:     "08.06.1990", // 2024-06-08 Saturday, daysUntil -2
			wantIncluded: true,
			wantBday:     date(2024, time.June, 8),
			wantCongrats: date(2024, time.June, 10),
			wantDays:     0,
			desc:         "the shift applies before the window test, landing on today",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []*book.Record{recordWithBirthday(t, "Test", tt.birthday)}
			entries := Upcoming(records, today)

			if !tt.wantIncluded {
				assert.Empty(t, entries, tt.desc)
				return
			}

			require.Len(t, entries, 1, tt.desc)
			assert.Equal(t, "Test", entries[0].Name)
			assert.Equal(t, tt.wantBday, entries[0].BirthdayThisYear)
			assert.Equal(t, tt.wantCongrats, entries[0].CongratulationDate)
			assert.Equal(t, tt.wantDays, entries[0].DaysUntil)
		})
	}
}

func TestUpcoming_SkipsRecordsWithoutBirthday(t *testing.T) {
	records := []*book.Record{
		book.NewRecord("No Birthday"),
		recordWithBirthday(t, "Has Birthday", "12.06.2000"),
	}

	entries := Upcoming(records, date(2024, time.June, 10))
	require.Len(t, entries, 1)
	assert.Equal(t, "Has Birthday", entries[0].Name)
}

func TestUpcoming_EmptyInput(t *testing.T) {
	assert.Empty(t, Upcoming(nil, date(2024, time.June, 10)))
}

// TestUpcoming_Ordering verifies a deterministic order: congratulation date
// first, name as tie-breaker.
func TestUpcoming_Ordering(t *testing.T) {
	today := date(2024, time.June, 10)
	records := []*book.Record{
		recordWithBirthday(t, "Zoe", "12.06.1993"),
		recordWithBirthday(t, "Amy", "14.06.1991"),
		recordWithBirthday(t, "Ben", "12.06.1992"),
	}

	entries := Upcoming(records, today)
	require.Len(t, entries, 3)
	assert.Equal(t, "Ben", entries[0].Name)
	assert.Equal(t, "Zoe", entries[1].Name)
	assert.Equal(t, "Amy", entries[2].Name)
}

// TestUpcoming_BirthYearIgnored verifies the projection uses only month and
// day; the birth year never affects the window.
func TestUpcoming_BirthYearIgnored(t *testing.T) {
	today := date(2024, time.June, 10)
	records := []*book.Record{
		recordWithBirthday(t, "Old", "12.06.1940"),
		recordWithBirthday(t, "Young", "12.06.2020"),
	}

	entries := Upcoming(records, today)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, date(2024, time.June, 12), e.BirthdayThisYear)
	}
}
