package schedule

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-phonebook/internal/config"
)

func TestCalendar_EmptyWindowYieldsStub(t *testing.T) {
	data, err := Calendar(nil, date(2024, time.June, 10))
	require.NoError(t, err)
	assert.Equal(t, config.StubVCalendar, string(data),
		"An empty window must still produce a valid VCALENDAR")
}

func TestCalendar_RendersEntries(t *testing.T) {
	entries := []Entry{
		{
			Name:               "Alice",
			BirthdayThisYear:   date(2024, time.June, 15),
			CongratulationDate: date(2024, time.June, 17),
			DaysUntil:          7,
		},
		{
			Name:               "Bob",
			BirthdayThisYear:   date(2024, time.June, 12),
			CongratulationDate: date(2024, time.June, 12),
			DaysUntil:          2,
		},
	}

	data, err := Calendar(entries, date(2024, time.June, 10))
	require.NoError(t, err)
	ics := string(data)

	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "PRODID:"+config.ICalProdid)
	assert.Contains(t, ics, "SUMMARY:Congratulate Alice")
	assert.Contains(t, ics, "SUMMARY:Congratulate Bob")
	assert.Contains(t, ics, "20240617", "Events are dated at the congratulation date")
	assert.Equal(t, 2, strings.Count(ics, "BEGIN:VEVENT"))
}

// TestCalendar_StableUIDs verifies the same entry always renders with the
// same UID, so feed clients keep a stable event identity across refreshes.
func TestCalendar_StableUIDs(t *testing.T) {
	entries := []Entry{{
		Name:               "Alice",
		BirthdayThisYear:   date(2024, time.June, 15),
		CongratulationDate: date(2024, time.June, 17),
	}}

	first, err := Calendar(entries, date(2024, time.June, 10))
	require.NoError(t, err)
	second, err := Calendar(entries, date(2024, time.June, 10))
	require.NoError(t, err)

	assert.Equal(t, uidLine(t, string(first)), uidLine(t, string(second)))
}

func uidLine(t *testing.T, ics string) string {
	t.Helper()
	for _, line := range strings.Split(ics, "\r\n") {
		if strings.HasPrefix(line, config.PropUID) {
			return line
		}
	}
	t.Fatal("no UID line in calendar output")
	return ""
}
