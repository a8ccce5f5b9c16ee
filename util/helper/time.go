package helper_util

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Helper function to parse time
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	return t, err
}

// ParseOptionalTime returns the zero time for an empty string.
func ParseOptionalTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return ParseTime(s)
}

// NewOrderNumber builds prefix + YYYYMMDDHHMMSS + six uppercase characters
// taken from a random uuid.
func NewOrderNumber(prefix string, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return prefix + now.UTC().Format("20060102150405") + suffix
}

// NewPassCode returns an opaque, unguessable visitor pass code.
func NewPassCode() string {
	return uuid.NewString()
}
