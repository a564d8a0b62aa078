// Package book holds the contact data model: records keyed by name inside an
// address book, with normalized phone values and optional birthdays.
package book

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-phonebook/internal/config"
	"github.com/tartampluch/go-phonebook/internal/phone"
)

// Record is a single contact: a name, an ordered set of canonical phone
// values, and at most one birthday. All mutation goes through its methods so
// the no-duplicate-phone invariant cannot be bypassed.
type Record struct {
	name        string
	phones      []phone.Value
	birthday    time.Time
	hasBirthday bool
}

// NewRecord creates an empty record for the given name.
func NewRecord(name string) *Record {
	return &Record{name: name}
}

// Name returns the record's identity key. Comparison is case-sensitive.
func (r *Record) Name() string {
	return r.name
}

// Phones returns a copy of the stored values in insertion order.
func (r *Record) Phones() []phone.Value {
	out := make([]phone.Value, len(r.phones))
	copy(out, r.phones)
	return out
}

// AddPhone normalizes raw and appends it, preserving insertion order.
func (r *Record) AddPhone(raw string) error {
	v, err := phone.Normalize(raw)
	if err != nil {
		return err
	}
	if r.indexOf(v) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicatePhone, v)
	}
	r.phones = append(r.phones, v)
	return nil
}

// EditPhone replaces the value equal to normalize(oldRaw) with
// normalize(newRaw), keeping its position.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	oldV, err := phone.Normalize(oldRaw)
	if err != nil {
		return err
	}
	newV, err := phone.Normalize(newRaw)
	if err != nil {
		return err
	}

	idx := r.indexOf(oldV)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrPhoneNotFound, oldV)
	}
	// Replacing with a value already stored elsewhere would break the
	// no-duplicates invariant.
	if other := r.indexOf(newV); other >= 0 && other != idx {
		return fmt.Errorf("%w: %s", ErrDuplicatePhone, newV)
	}

	r.phones[idx] = newV
	return nil
}

// FindPhone normalizes raw and reports the stored value, if any.
// Unparseable input matches nothing.
func (r *Record) FindPhone(raw string) (phone.Value, bool) {
	v, err := phone.Normalize(raw)
	if err != nil {
		return "", false
	}
	if r.indexOf(v) < 0 {
		return "", false
	}
	return v, true
}

// DeletePhone removes the value equal to normalize(raw).
func (r *Record) DeletePhone(raw string) error {
	v, err := phone.Normalize(raw)
	if err != nil {
		return err
	}
	idx := r.indexOf(v)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrPhoneNotFound, v)
	}
	r.phones = append(r.phones[:idx], r.phones[idx+1:]...)
	return nil
}

// SetBirthday parses raw as DD.MM.YYYY and stores it, overwriting any
// previous birthday. Impossible calendar dates (29.02.2021) are rejected.
func (r *Record) SetBirthday(raw string) error {
	t, err := time.Parse(config.DateFormatBirthday, raw)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidBirthday, raw)
	}
	r.birthday = t
	r.hasBirthday = true
	return nil
}

// Birthday returns the stored date and whether one is set.
func (r *Record) Birthday() (time.Time, bool) {
	return r.birthday, r.hasBirthday
}

// BirthdayString renders the birthday in the persisted DD.MM.YYYY form,
// or "" when none is set.
func (r *Record) BirthdayString() string {
	if !r.hasBirthday {
		return ""
	}
	return r.birthday.Format(config.DateFormatBirthday)
}

func (r *Record) indexOf(v phone.Value) int {
	for i, p := range r.phones {
		if p == v {
			return i
		}
	}
	return -1
}
