// Package store persists the address book: a JSON snapshot file for session
// state, and vCard import/export for exchange with other contact tools.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tartampluch/go-phonebook/internal/book"
	"github.com/tartampluch/go-phonebook/internal/config"
)

// Load reads the snapshot file at path and rebuilds the book.
// A missing file yields an empty book. Malformed or invalid content fails
// closed: the problem is logged and an empty book is returned rather than a
// partially restored one.
func Load(path string) *book.Book {
	log := slog.With(
		config.LogKeyComponent, config.CompStore,
		config.LogKeyPath, path,
	)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info(config.MsgBookMissing)
		} else {
			log.Warn(config.MsgBookReset, config.LogKeyError, err)
		}
		return book.New()
	}

	var snap book.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Warn(config.MsgBookReset,
			config.LogKeyError, fmt.Errorf("%s: %w", config.ErrStateDecode, err),
		)
		return book.New()
	}

	b, err := book.FromSnapshot(snap)
	if err != nil {
		log.Warn(config.MsgBookReset,
			config.LogKeyError, fmt.Errorf("%s: %w", config.ErrStateRestore, err),
		)
		return book.New()
	}

	log.Info(config.MsgBookLoaded, config.LogKeyContacts, b.Len())
	return b
}

// Save writes the book's snapshot to path. The write is atomic: content goes
// to a temp file in the same directory, then renames over the target.
func Save(path string, b *book.Book) error {
	data, err := json.MarshalIndent(b.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrStateEncode, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrStateWrite, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", config.ErrStateWrite, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", config.ErrStateWrite, err)
	}
	if err := os.Chmod(tmpName, config.FilePermUserRW); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", config.ErrStateWrite, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", config.ErrStateWrite, err)
	}

	slog.Info(config.MsgBookSaved,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyPath, path,
		config.LogKeyContacts, b.Len(),
	)
	return nil
}
