package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Phonebook"
	AppID             = "com.github.tartampluch.go-phonebook"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the phonebook file and logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagFile         = "file"
	FlagServe        = "serve"
	FlagPort         = "port"
	FlagLang         = "lang"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescFile     = "Path to the phonebook JSON file"
	FlagDescServe    = "Serve the congratulation calendar over HTTP"
	FlagDescPort     = "Port for the calendar feed server"
	FlagDescLang     = "Reply language (ISO 639-1)"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultPort     = "18081"
	DefaultLanguage = "en"
	DefaultBookFile = "phonebook.json"

	// DefaultRegion resolves national phone input without a country code.
	DefaultRegion = "UA"

	// UpcomingWindowDays bounds the congratulation lookahead, inclusive.
	UpcomingWindowDays = 7

	// Weekend congratulations move to the next working day.
	ShiftSaturdayDays = 2
	ShiftSundayDays   = 1

	UIDSalt       = "go-phonebook-v1-" // Salt for deterministic UID generation
	UIDHashLength = 16
)

// SupportedLanguages defines the list of available reply languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	// DateFormatBirthday is the textual birthday format accepted from users
	// and written back into the persisted snapshot.
	DateFormatBirthday = "02.01.2006"

	// DateFormatVCard is the BDAY layout used on vCard import/export.
	DateFormatVCard = "20060102"

	// DateFormatDisplay renders dates in replies and logs.
	DateFormatDisplay = "2006-01-02"

	// DateFormatHuman renders a birthday for the show-birthday reply.
	DateFormatHuman = "Monday, January 2"

	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Phonebook//Scheduler//EN"
	ICalCalName = "Congratulations"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "gophonebook"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"
	VCardTEL  = "TEL"

	// FormatSummary renders the VEVENT summary for a congratulation entry.
	FormatSummary = "Congratulate %s"

	// StubVCalendar is the minimal valid iCalendar object used when the
	// congratulation window is empty. Keeps feed clients from flagging the
	// feed as invalid.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AllowedMethods     = "GET, HEAD"
	RouteRoot          = "/"
	AddrSeparator      = ":"

	MinPort = 1
	MaxPort = 65535
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Structured Logging: Keys & Components
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyPath      = "path"
	LogKeyName      = "name"
	LogKeyCommand   = "command"
	LogKeyCount     = "count"
	LogKeyPort      = "port"
	LogKeyETag      = "etag"
	LogKeySizeBytes = "size_bytes"
	LogKeyKey       = "key"
	LogKeyLang      = "lang"
	LogKeyValue     = "value"
	LogKeyBuild     = "build"
	LogKeyApp       = "app"
	LogKeyVersion   = "version"
	LogKeyGoVer     = "go_version"
	LogKeyEnv       = "env"
	LogKeyOS        = "os"
	LogKeyArch      = "arch"
	LogKeyPID       = "pid"
	LogKeyContacts  = "contacts"
	LogKeyUpcoming  = "upcoming"
)

const (
	CompMain      = "main"
	CompBook      = "book"
	CompStore     = "store"
	CompServer    = "server"
	CompBot       = "bot"
	CompI18n      = "i18n"
	CompScheduler = "scheduler"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrAppFailed      = "application failed unexpectedly"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrPortRequired   = "server port is required"
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrWriteResp      = "failed to write response body"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrVCardDecode    = "failed to decode vCard stream"
	ErrVCardEncode    = "failed to encode vCard data"
	ErrStateRead      = "failed to read phonebook file"
	ErrStateDecode    = "persisted phonebook is malformed"
	ErrStateRestore   = "persisted phonebook failed validation"
	ErrStateEncode    = "failed to encode phonebook snapshot"
	ErrStateWrite     = "failed to write phonebook file"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"

	MsgLogWarning = "warning: %s %q: %v\n"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, ending session"
	MsgBookLoaded    = "Phonebook loaded"
	MsgBookMissing   = "Phonebook file not found, starting empty"
	MsgBookReset     = "Phonebook unreadable, starting empty"
	MsgBookSaved     = "Phonebook saved"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedPhone  = "Skipping rejected phone value"
	MsgSkippedBday   = "Skipping unparseable BDAY value"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Calendar feed updated"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgCmdReceived   = "Command received"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyGreeting       = "greeting"
	TKeyGoodbye        = "goodbye"
	TKeyHelp           = "help"
	TKeyUnknownCmd     = "unknown_command"
	TKeyMissingArgs    = "missing_args"
	TKeyContactAdded   = "contact_added"   // Requires Name, Phone
	TKeyPhoneAdded     = "phone_added"     // Requires Name, Phone
	TKeyPhoneChanged   = "phone_changed"   // Requires Name, Phone
	TKeyContactDeleted = "contact_deleted" // Requires Name
	TKeyContactLine    = "contact_line"    // Requires Name, Phones
	TKeyBookEmpty      = "book_empty"
	TKeySearchEmpty    = "search_empty" // Requires Pattern
	TKeyBirthdaySet    = "birthday_set"  // Requires Name, Date
	TKeyBirthdayShow   = "birthday_show" // Requires Name, Date
	TKeyBirthdayNone   = "birthday_none" // Requires Name
	TKeyUpcomingHeader = "upcoming_header"
	TKeyUpcomingLine   = "upcoming_line" // Requires Name, Birthday, Congrats
	TKeyUpcomingEmpty  = "upcoming_empty"
	TKeyImported       = "imported"   // Requires Count
	TKeyExported       = "exported"   // Requires Count
	TKeyFileError      = "file_error" // Requires Path

	// Error taxonomy replies
	TKeyErrInvalidPhone     = "err_invalid_phone"
	TKeyErrDuplicatePhone   = "err_duplicate_phone"
	TKeyErrPhoneNotFound    = "err_phone_not_found"
	TKeyErrInvalidBirthday  = "err_invalid_birthday"
	TKeyErrDuplicateContact = "err_duplicate_contact"
	TKeyErrContactNotFound  = "err_contact_not_found"
)
