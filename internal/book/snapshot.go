package book

import "fmt"

// ContactState is the persisted shape of one contact. Phone strings are the
// canonical values as stored; the birthday keeps its DD.MM.YYYY text.
type ContactState struct {
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// Snapshot is the persisted shape of the whole book, keyed by contact name.
type Snapshot map[string]ContactState

// Snapshot captures the current book contents for serialization.
// The result round-trips through FromSnapshot unchanged.
func (b *Book) Snapshot() Snapshot {
	snap := make(Snapshot, len(b.records))
	for name, rec := range b.records {
		state := ContactState{
			Phones:   make([]string, 0, len(rec.phones)),
			Birthday: rec.BirthdayString(),
		}
		for _, p := range rec.phones {
			state.Phones = append(state.Phones, p.String())
		}
		snap[name] = state
	}
	return snap
}

// FromSnapshot rebuilds a book from persisted state, replaying every value
// through the record operations so the usual invariants are re-checked.
// Any rejected value fails the whole restore; the caller decides whether to
// fall back to an empty book.
func FromSnapshot(snap Snapshot) (*Book, error) {
	b := New()
	for name, state := range snap {
		rec := NewRecord(name)
		for _, raw := range state.Phones {
			if err := rec.AddPhone(raw); err != nil {
				return nil, fmt.Errorf("contact %q: %w", name, err)
			}
		}
		if state.Birthday != "" {
			if err := rec.SetBirthday(state.Birthday); err != nil {
				return nil, fmt.Errorf("contact %q: %w", name, err)
			}
		}
		if err := b.AddRecord(rec); err != nil {
			return nil, err
		}
	}
	return b, nil
}
