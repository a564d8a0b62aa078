package book

import "errors"

// Validation failures surfaced to the interactive layer. None are fatal;
// callers match them with errors.Is and keep the session going.
var (
	ErrDuplicatePhone   = errors.New("phone already exists on contact")
	ErrPhoneNotFound    = errors.New("phone not found on contact")
	ErrInvalidBirthday  = errors.New("invalid birthday, use DD.MM.YYYY")
	ErrDuplicateContact = errors.New("contact already exists")
	ErrContactNotFound  = errors.New("contact not found")
)
