package store

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-phonebook/internal/book"
	"github.com/tartampluch/go-phonebook/internal/config"
)

// ImportVCards decodes a vCard stream and merges the cards into dst.
// Malformed cards, rejected phone values, and unparseable BDAY values are
// skipped with a logged warning so one bad card cannot sink the import.
// Returns the number of cards merged.
func ImportVCards(r io.Reader, dst *book.Book) (int, error) {
	log := slog.With(config.LogKeyComponent, config.CompStore)
	decoder := vcard.NewDecoder(r)
	imported := 0

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			continue
		}

		// Name strategy: FN (formatted) > N (structured); nameless cards
		// cannot be keyed and are dropped.
		var name string
		if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil && n.Value != "" {
			name = n.Value
		} else {
			log.Warn(config.MsgSkippedCard)
			continue
		}

		rec, ok := dst.Find(name)
		if !ok {
			rec = book.NewRecord(name)
			if err := dst.AddRecord(rec); err != nil {
				return imported, err
			}
		}

		for _, tel := range card.Values(config.VCardTEL) {
			if err := rec.AddPhone(tel); err != nil {
				// Duplicates on merge are expected; anything else is a
				// value the normalizer rejected.
				if !errors.Is(err, book.ErrDuplicatePhone) {
					log.Warn(config.MsgSkippedPhone,
						config.LogKeyName, name,
						config.LogKeyValue, tel,
						config.LogKeyError, err,
					)
				}
			}
		}

		if bday := card.Get(config.VCardBDAY); bday != nil && bday.Value != "" {
			if t, err := time.Parse(config.DateFormatVCard, bday.Value); err == nil {
				_ = rec.SetBirthday(t.Format(config.DateFormatBirthday))
			} else {
				log.Warn(config.MsgSkippedBday,
					config.LogKeyName, name,
					config.LogKeyValue, bday.Value,
				)
			}
		}

		imported++
	}

	return imported, nil
}

// ExportVCards writes every record of b as a VERSION:4.0 vCard.
// Returns the number of cards written.
func ExportVCards(w io.Writer, b *book.Book) (int, error) {
	encoder := vcard.NewEncoder(w)
	exported := 0

	for _, rec := range b.Records() {
		card := make(vcard.Card)
		card.SetValue(config.VCardFN, rec.Name())
		for _, p := range rec.Phones() {
			card.AddValue(config.VCardTEL, p.String())
		}
		if bday, ok := rec.Birthday(); ok {
			card.SetValue(config.VCardBDAY, bday.Format(config.DateFormatVCard))
		}
		vcard.ToV4(card)

		if err := encoder.Encode(card); err != nil {
			return exported, fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
		exported++
	}

	return exported, nil
}
