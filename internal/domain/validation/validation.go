package validation

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinPasswordLength = 6
	DefaultMaxSizeMB  = 50
)

// DefaultECGFormats are the accepted upload extensions.
var DefaultECGFormats = []string{".csv", ".mat", ".txt"}

// Failure kinds, usable with errors.Is against an *Error.
var (
	ErrPasswordTooShort = errors.New("password_too_short")
	ErrPasswordMismatch = errors.New("password_mismatch")
	ErrFileFormat       = errors.New("invalid_file_format")
	ErrFileTooLarge     = errors.New("file_too_large")
	ErrInvalidEmail     = errors.New("invalid_email")
	ErrRequired         = errors.New("required")
)

// Error is a user-facing input failure. Message is the text shown in the
// notification.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func fail(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// AsError extracts the validation failure from err, if any.
func AsError(err error) (*Error, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func CheckPassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return fail(ErrPasswordTooShort, "Password must be at least %d characters!", MinPasswordLength)
	}
	return nil
}

func CheckPasswordMatch(password, confirm string) error {
	if password != confirm {
		return fail(ErrPasswordMismatch, "Passwords do not match!")
	}
	return nil
}

// Extension returns the lower-cased text after the last dot with a leading
// dot. A name without a dot yields "." + the whole name.
func Extension(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if i := strings.LastIndex(base, "."); i >= 0 {
		base = base[i+1:]
	}
	return "." + strings.ToLower(base)
}

// CheckECGFile validates an upload by name and size only; content is never
// looked at.
func CheckECGFile(name string, size int64, allowed []string, maxSizeMB int) error {
	if len(allowed) == 0 {
		allowed = DefaultECGFormats
	}
	if maxSizeMB <= 0 {
		maxSizeMB = DefaultMaxSizeMB
	}

	ext := Extension(name)
	ok := false
	for _, a := range allowed {
		if strings.EqualFold(a, ext) {
			ok = true
			break
		}
	}
	if !ok {
		return fail(ErrFileFormat, "Invalid file format. Please upload %s files.", strings.Join(allowed, ", "))
	}

	if size > MaxBytes(maxSizeMB) {
		return fail(ErrFileTooLarge, "File size exceeds %dMB limit.", maxSizeMB)
	}
	return nil
}

// MaxBytes converts a megabyte limit to bytes.
func MaxBytes(maxSizeMB int) int64 {
	return int64(maxSizeMB) * 1024 * 1024
}

func CheckEmail(email string) error {
	if !emailRx.MatchString(email) {
		return fail(ErrInvalidEmail, "Please enter a valid email address!")
	}
	return nil
}

func CheckRequired(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return fail(ErrRequired, "%s is required!", field)
	}
	return nil
}
