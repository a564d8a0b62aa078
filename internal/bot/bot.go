// Package bot implements the interactive session: a line-oriented command
// dispatcher that drives the address book and reports results in the
// session language.
package bot

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tartampluch/go-phonebook/internal/book"
	"github.com/tartampluch/go-phonebook/internal/config"
	"github.com/tartampluch/go-phonebook/internal/phone"
	"github.com/tartampluch/go-phonebook/internal/schedule"
	"github.com/tartampluch/go-phonebook/internal/store"
)

// Session commands.
const (
	cmdHello        = "hello"
	cmdAdd          = "add"
	cmdChange       = "change"
	cmdDelete       = "delete"
	cmdSearch       = "search"
	cmdPhone        = "phone"
	cmdAll          = "all"
	cmdShow         = "show"
	cmdAddBirthday  = "add-birthday"
	cmdShowBirthday = "show-birthday"
	cmdBirthdays    = "birthdays"
	cmdImport       = "import"
	cmdExport       = "export"
	cmdHelp         = "help"
	cmdClose        = "close"
	cmdExit         = "exit"

	prompt = "command: "
)

// Bot runs one interactive session over a single address book.
// It never touches records except through the book's operations.
type Bot struct {
	Book       *book.Book
	Clock      schedule.Clock
	Translator *Translator

	In  io.Reader
	Out io.Writer

	// OnMutate, when set, fires after every successful mutation. The
	// entrypoint uses it to persist the book and refresh the calendar feed.
	OnMutate func(*book.Book)
}

// New wires a session over b with stdin/stdout defaults.
func New(b *book.Book, clock schedule.Clock, tr *Translator) *Bot {
	return &Bot{
		Book:       b,
		Clock:      clock,
		Translator: tr,
		In:         os.Stdin,
		Out:        os.Stdout,
	}
}

// Run reads commands until exit, EOF, or context cancellation.
func (b *Bot) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(b.In)
	for {
		if ctx.Err() != nil {
			slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompBot)
			return nil
		}

		fmt.Fprint(b.Out, prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}

		reply, quit := b.Execute(scanner.Text())
		if reply != "" {
			fmt.Fprintln(b.Out, reply)
		}
		if quit {
			return nil
		}
	}
}

// Execute runs one command line and returns the reply text plus whether the
// session should end. Every core failure is rendered as a reply; nothing
// here terminates the session except close/exit.
func (b *Bot) Execute(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	slog.Debug(config.MsgCmdReceived,
		config.LogKeyComponent, config.CompBot,
		config.LogKeyCommand, cmd,
	)

	switch cmd {
	case cmdHello:
		return b.Translator.Msg(config.TKeyGreeting), false
	case cmdHelp:
		return b.Translator.Msg(config.TKeyHelp), false
	case cmdClose, cmdExit:
		return b.Translator.Msg(config.TKeyGoodbye), true
	case cmdAdd:
		return b.reply(b.addContact(args))
	case cmdChange:
		return b.reply(b.changeContact(args))
	case cmdDelete:
		return b.reply(b.deleteContact(args))
	case cmdSearch:
		return b.reply(b.searchContacts(args))
	case cmdPhone:
		return b.reply(b.showPhones(args))
	case cmdAll, cmdShow:
		return b.reply(b.showAll())
	case cmdAddBirthday:
		return b.reply(b.addBirthday(args))
	case cmdShowBirthday:
		return b.reply(b.showBirthday(args))
	case cmdBirthdays:
		return b.reply(b.upcomingBirthdays())
	case cmdImport:
		return b.reply(b.importVCards(args))
	case cmdExport:
		return b.reply(b.exportVCards(args))
	default:
		return b.Translator.Msg(config.TKeyUnknownCmd), false
	}
}

// reply folds a handler result into a user-facing line.
func (b *Bot) reply(msg string, err error) (string, bool) {
	if err != nil {
		return b.renderError(err), false
	}
	return msg, false
}

// renderError maps the core error taxonomy onto localized replies.
func (b *Bot) renderError(err error) string {
	switch {
	case errors.Is(err, phone.ErrInvalidPhone):
		return b.Translator.Msg(config.TKeyErrInvalidPhone)
	case errors.Is(err, book.ErrDuplicatePhone):
		return b.Translator.Msg(config.TKeyErrDuplicatePhone)
	case errors.Is(err, book.ErrPhoneNotFound):
		return b.Translator.Msg(config.TKeyErrPhoneNotFound)
	case errors.Is(err, book.ErrInvalidBirthday):
		return b.Translator.Msg(config.TKeyErrInvalidBirthday)
	case errors.Is(err, book.ErrDuplicateContact):
		return b.Translator.Msg(config.TKeyErrDuplicateContact)
	case errors.Is(err, book.ErrContactNotFound):
		return b.Translator.Msg(config.TKeyErrContactNotFound)
	default:
		return err.Error()
	}
}

func (b *Bot) mutated() {
	if b.OnMutate != nil {
		b.OnMutate(b.Book)
	}
}

// addContact handles "add <name> <phone> [birthday]". An existing name gets
// the phone appended; a new name creates the record.
func (b *Bot) addContact(args []string) (string, error) {
	if len(args) < 2 {
		return b.Translator.Msg(config.TKeyMissingArgs), nil
	}
	name, rawPhone := args[0], args[1]

	if rec, ok := b.Book.Find(name); ok {
		if err := rec.AddPhone(rawPhone); err != nil {
			return "", err
		}
		if len(args) > 2 {
			if err := rec.SetBirthday(args[2]); err != nil {
				return "", err
			}
		}
		b.mutated()
		v, _ := rec.FindPhone(rawPhone)
		return b.Translator.MsgData(config.TKeyPhoneAdded, map[string]any{
			"Name":  name,
			"Phone": v.String(),
		}), nil
	}

	rec := book.NewRecord(name)
	if err := rec.AddPhone(rawPhone); err != nil {
		return "", err
	}
	if len(args) > 2 {
		if err := rec.SetBirthday(args[2]); err != nil {
			return "", err
		}
	}
	if err := b.Book.AddRecord(rec); err != nil {
		return "", err
	}
	b.mutated()
	v, _ := rec.FindPhone(rawPhone)
	return b.Translator.MsgData(config.TKeyContactAdded, map[string]any{
		"Name":  name,
		"Phone": v.String(),
	}), nil
}

// changeContact handles "change <name> <old-phone> <new-phone>".
func (b *Bot) changeContact(args []string) (string, error) {
	if len(args) < 3 {
		return b.Translator.Msg(config.TKeyMissingArgs), nil
	}
	name := args[0]
	rec, ok := b.Book.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", book.ErrContactNotFound, name)
	}
	if err := rec.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	b.mutated()
	v, _ := rec.FindPhone(args[2])
	return b.Translator.MsgData(config.TKeyPhoneChanged, map[string]any{
		"Name":  name,
		"Phone": v.String(),
	}), nil
}

func (b *Bot) deleteContact(args []string) (string, error) {
	if len(args) < 1 {
		return b.Translator.Msg(config.TKeyMissingArgs), nil
	}
	if err := b.Book.DeleteRecord(args[0]); err != nil {
		return "", err
	}
	b.mutated()
	return b.Translator.MsgData(config.TKeyContactDeleted, map[string]any{
		"Name": args[0],
	}), nil
}

func (b *Bot) searchContacts(args []string) (string, error) {
	if len(args) < 1 {
		return b.Translator.Msg(config.TKeyMissingArgs), nil
	}
	matches := b.Book.SearchByPattern(args[0])
	if len(matches) == 0 {
		return b.Translator.MsgData(config.TKeySearchEmpty, map[string]any{
			"Pattern": args[0],
		}), nil
	}
	return b.renderRecords(matches), nil
}

func (b *Bot) showPhones(args []string) (string, error) {
	if len(args) < 1 {
		return b.Translator.Msg(config.TKeyMissingArgs), nil
	}
	rec, ok := b.Book.Find(args[0])
	if !ok {
		return "", fmt.Errorf("%w: %s", book.ErrContactNotFound, args[0])
	}
	return b.contactLine(rec), nil
}

func (b *Bot) showAll() (string, error) {
	records := b.Book.Records()
	if len(records) == 0 {
		return b.Translator.Msg(config.TKeyBookEmpty), nil
	}
	return b.renderRecords(records), nil
}

func (b *Bot) addBirthday(args []string) (string, error) {
	if len(args) < 2 {
		return b.Translator.Msg(config.TKeyMissingArgs), nil
	}
	name := args[0]
	rec, ok := b.Book.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", book.ErrContactNotFound, name)
	}
	if err := rec.SetBirthday(args[1]); err != nil {
		return "", err
	}
	b.mutated()
	return b.Translator.MsgData(config.TKeyBirthdaySet, map[string]any{
		"Name": name,
		"Date": rec.BirthdayString(),
	}), nil
}

func (b *Bot) showBirthday(args []string) (string, error) {
	if len(args) < 1 {
		return b.Translator.Msg(config.TKeyMissingArgs), nil
	}
	name := args[0]
	rec, ok := b.Book.Find(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", book.ErrContactNotFound, name)
	}
	bday, ok := rec.Birthday()
	if !ok {
		return b.Translator.MsgData(config.TKeyBirthdayNone, map[string]any{
			"Name": name,
		}), nil
	}
	return b.Translator.MsgData(config.TKeyBirthdayShow, map[string]any{
		"Name": name,
		"Date": bday.Format(config.DateFormatHuman),
	}), nil
}

func (b *Bot) upcomingBirthdays() (string, error) {
	entries := schedule.Upcoming(b.Book.Records(), b.Clock.Now())
	if len(entries) == 0 {
		return b.Translator.Msg(config.TKeyUpcomingEmpty), nil
	}

	lines := []string{b.Translator.Msg(config.TKeyUpcomingHeader)}
	for _, e := range entries {
		lines = append(lines, b.Translator.MsgData(config.TKeyUpcomingLine, map[string]any{
			"Name":     e.Name,
			"Birthday": e.BirthdayThisYear.Format(config.DateFormatHuman),
			"Congrats": e.CongratulationDate.Format(config.DateFormatHuman),
		}))
	}
	return strings.Join(lines, "\n"), nil
}

func (b *Bot) importVCards(args []string) (string, error) {
	if len(args) < 1 {
		return b.Translator.Msg(config.TKeyMissingArgs), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return b.Translator.MsgData(config.TKeyFileError, map[string]any{
			"Path": args[0],
		}), nil
	}
	defer func() { _ = f.Close() }()

	count, err := store.ImportVCards(f, b.Book)
	if err != nil {
		return "", err
	}
	if count > 0 {
		b.mutated()
	}
	return b.Translator.MsgData(config.TKeyImported, map[string]any{
		"Count": count,
	}), nil
}

func (b *Bot) exportVCards(args []string) (string, error) {
	if len(args) < 1 {
		return b.Translator.Msg(config.TKeyMissingArgs), nil
	}
	f, err := os.Create(args[0])
	if err != nil {
		return b.Translator.MsgData(config.TKeyFileError, map[string]any{
			"Path": args[0],
		}), nil
	}
	defer func() { _ = f.Close() }()

	count, err := store.ExportVCards(f, b.Book)
	if err != nil {
		return "", err
	}
	return b.Translator.MsgData(config.TKeyExported, map[string]any{
		"Count": count,
	}), nil
}

func (b *Bot) renderRecords(records []*book.Record) string {
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, b.contactLine(rec))
	}
	return strings.Join(lines, "\n")
}

func (b *Bot) contactLine(rec *book.Record) string {
	phones := make([]string, 0, len(rec.Phones()))
	for _, p := range rec.Phones() {
		phones = append(phones, p.String())
	}
	return b.Translator.MsgData(config.TKeyContactLine, map[string]any{
		"Name":   rec.Name(),
		"Phones": strings.Join(phones, "; "),
	})
}
