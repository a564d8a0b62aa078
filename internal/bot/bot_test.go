package bot

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-phonebook/internal/book"
)

// MockClock controls "today" for deterministic scheduling replies.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

func newTestBot(t *testing.T) *Bot {
	t.Helper()
	// Monday 2024-06-10 anchors the birthday scenarios.
	clock := MockClock{CurrentTime: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)}
	return New(book.New(), clock, NewTranslator("en"))
}

func run(t *testing.T, b *Bot, line string) string {
	t.Helper()
	reply, quit := b.Execute(line)
	require.False(t, quit, "command %q must not end the session", line)
	return reply
}

func TestExecute_AddAndShow(t *testing.T) {
	b := newTestBot(t)

	reply := run(t, b, "add Alice 0501234567")
	assert.Contains(t, reply, "Alice")
	assert.Contains(t, reply, "+380501234567", "Reply shows the canonical value")

	rec, ok := b.Book.Find("Alice")
	require.True(t, ok)
	assert.Len(t, rec.Phones(), 1)

	// A second add for the same name appends a phone to the record.
	run(t, b, "add Alice 0502345678")
	rec, _ = b.Book.Find("Alice")
	assert.Len(t, rec.Phones(), 2)

	all := run(t, b, "all")
	assert.Contains(t, all, "+380501234567; +380502345678")
}

func TestExecute_AddWithBirthday(t *testing.T) {
	b := newTestBot(t)
	run(t, b, "add Alice 0501234567 15.06.1990")

	rec, ok := b.Book.Find("Alice")
	require.True(t, ok)
	assert.Equal(t, "15.06.1990", rec.BirthdayString())
}

func TestExecute_ErrorsKeepSessionAlive(t *testing.T) {
	b := newTestBot(t)
	run(t, b, "add Alice 0501234567")

	tests := []struct {
		name      string
		line      string
		wantReply string
	}{
		{"invalid phone", "add Bob junk", "Invalid phone number."},
		{"duplicate phone", "add Alice 0501234567", "already exists"},
		{"change unknown contact", "change Bob 0501234567 0502345678", "Contact not found."},
		{"change unknown phone", "change Alice 0509999999 0502345678", "not stored"},
		{"delete unknown contact", "delete Bob", "Contact not found."},
		{"invalid birthday", "add-birthday Alice 29.02.2021", "Use DD.MM.YYYY"},
		{"unknown command", "frobnicate", "Invalid command"},
		{"missing arguments", "add", "Not enough arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, run(t, b, tt.line), tt.wantReply)
		})
	}

	// The book is untouched by all the failures above.
	assert.Equal(t, 1, b.Book.Len())
}

func TestExecute_ChangeAndDelete(t *testing.T) {
	b := newTestBot(t)
	run(t, b, "add Alice 0501234567")

	reply := run(t, b, "change Alice 0501234567 0502345678")
	assert.Contains(t, reply, "+380502345678")

	rec, _ := b.Book.Find("Alice")
	_, stillThere := rec.FindPhone("0501234567")
	assert.False(t, stillThere)

	run(t, b, "delete Alice")
	_, ok := b.Book.Find("Alice")
	assert.False(t, ok)
}

func TestExecute_Search(t *testing.T) {
	b := newTestBot(t)
	run(t, b, "add Alice 0501234567")
	run(t, b, "add Bob 0502345678")

	assert.Contains(t, run(t, b, "search ali"), "Alice")
	assert.Contains(t, run(t, b, "search 2345678"), "Bob")
	assert.Contains(t, run(t, b, "search nobody"), "Nothing matches")
}

func TestExecute_Birthdays(t *testing.T) {
	b := newTestBot(t)
	run(t, b, "add Alice 0501234567 15.06.1990") // Saturday -> congratulate Monday 17th
	run(t, b, "add Bob 0502345678 20.06.1995")   // Thursday, 10 days out -> excluded
	run(t, b, "add Carol 0503456789")            // no birthday -> skipped

	reply := run(t, b, "birthdays")
	assert.Contains(t, reply, "Upcoming birthdays")
	assert.Contains(t, reply, "Alice")
	assert.Contains(t, reply, "Monday, June 17", "Weekend birthday congratulated on Monday")
	assert.NotContains(t, reply, "Bob")
	assert.NotContains(t, reply, "Carol")
}

func TestExecute_BirthdaysEmptyWindow(t *testing.T) {
	b := newTestBot(t)
	run(t, b, "add Alice 0501234567 01.01.1990")

	assert.Contains(t, run(t, b, "birthdays"), "No upcoming birthdays")
}

func TestExecute_ShowBirthday(t *testing.T) {
	b := newTestBot(t)
	run(t, b, "add Alice 0501234567")

	assert.Contains(t, run(t, b, "show-birthday Alice"), "No birthday")

	run(t, b, "add-birthday Alice 15.06.1990")
	reply := run(t, b, "show-birthday Alice")
	assert.Contains(t, reply, "Friday, June 15", "Birthday renders with its own weekday, from 1990")
}

func TestExecute_OnMutateFires(t *testing.T) {
	b := newTestBot(t)
	mutations := 0
	b.OnMutate = func(*book.Book) { mutations++ }

	run(t, b, "add Alice 0501234567")  // mutates
	run(t, b, "all")                   // read-only
	run(t, b, "add Alice junk")        // fails, no mutation
	run(t, b, "add-birthday Alice 15.06.1990")
	run(t, b, "delete Alice")

	assert.Equal(t, 3, mutations)
}

func TestExecute_Quit(t *testing.T) {
	b := newTestBot(t)

	for _, cmd := range []string{"close", "exit"} {
		reply, quit := b.Execute(cmd)
		assert.True(t, quit)
		assert.Contains(t, reply, "Good bye")
	}
}

func TestRun_SessionLoop(t *testing.T) {
	b := newTestBot(t)
	b.In = strings.NewReader("hello\nadd Alice 0501234567\nexit\n")
	var out bytes.Buffer
	b.Out = &out

	require.NoError(t, b.Run(context.Background()))

	output := out.String()
	assert.Contains(t, output, "How can I help you?")
	assert.Contains(t, output, "Good bye!")

	_, ok := b.Book.Find("Alice")
	assert.True(t, ok, "Commands fed through the loop reach the book")
}

func TestRun_EOFEndsSession(t *testing.T) {
	b := newTestBot(t)
	b.In = strings.NewReader("hello\n")
	b.Out = &bytes.Buffer{}

	assert.NoError(t, b.Run(context.Background()))
}
