package book

import (
	"fmt"
	"sort"
	"strings"
)

// Book is the address book: a mapping from contact name to Record with
// unique, case-sensitive keys. It exclusively owns its records; callers
// obtain them via Find and mutate them through Record methods only.
type Book struct {
	records map[string]*Record
}

// New creates an empty address book.
func New() *Book {
	return &Book{records: make(map[string]*Record)}
}

// Len reports the number of stored contacts.
func (b *Book) Len() int {
	return len(b.records)
}

// AddRecord inserts rec under its name key.
func (b *Book) AddRecord(rec *Record) error {
	if _, ok := b.records[rec.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateContact, rec.Name())
	}
	b.records[rec.Name()] = rec
	return nil
}

// Find looks up a record by exact name. Absence is not an error.
func (b *Book) Find(name string) (*Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// DeleteRecord removes the record stored under name.
func (b *Book) DeleteRecord(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("%w: %s", ErrContactNotFound, name)
	}
	delete(b.records, name)
	return nil
}

// Records returns a membership snapshot sorted by name. Records added or
// deleted after the call are not reflected in the returned slice.
func (b *Book) Records() []*Record {
	out := make([]*Record, 0, len(b.records))
	for _, rec := range b.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// SearchByPattern returns records whose name or any stored phone value
// contains pattern, case-insensitively. No match yields an empty slice,
// never an error.
func (b *Book) SearchByPattern(pattern string) []*Record {
	needle := strings.ToLower(pattern)
	var out []*Record
	for _, rec := range b.Records() {
		if strings.Contains(strings.ToLower(rec.Name()), needle) {
			out = append(out, rec)
			continue
		}
		for _, p := range rec.Phones() {
			if strings.Contains(strings.ToLower(p.String()), needle) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}
