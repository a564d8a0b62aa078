package schedule

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-phonebook/internal/config"
)

// Calendar renders the congratulation entries as an iCalendar feed: one
// all-day VEVENT per entry, dated at the congratulation date. An empty entry
// list yields a minimal valid VCALENDAR so feed clients keep polling.
func Calendar(entries []Entry, now time.Time) ([]byte, error) {
	if len(entries) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// The stamp is a UTC instant; event dates stay in local calendar terms.
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, e := range entries {
		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, uidFor(e))
		event.Props.SetText(config.PropSummary, fmt.Sprintf(config.FormatSummary, e.Name))

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(e.CongratulationDate)
		event.Props.Set(dtStartProp)

		event.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}

// uidFor derives a deterministic event UID so feed clients see a stable
// identity for the same contact and date across refreshes.
func uidFor(e Entry) string {
	input := fmt.Sprintf(config.FormatHashInput,
		e.Name,
		e.CongratulationDate.Format(config.DateFormatDisplay),
		config.UIDSalt,
	)
	hash := sha256.Sum256([]byte(input))
	base := fmt.Sprintf("%x", hash[:config.UIDHashLength])
	return fmt.Sprintf(config.FormatUID, base, e.CongratulationDate.Year(), config.ICalDomain)
}
