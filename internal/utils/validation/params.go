package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
)

var idPattern = regexp.MustCompile(`^\d+$`)

// timestampLayouts are tried in order when parsing transaction dates.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ParseID validates a path identifier: digits only, fitting in int64.
func ParseID(field, raw string) (int64, error) {
	if !idPattern.MatchString(raw) {
		return 0, apperrors.NewValidationError(field, "Invalid ID format")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError(field, "Invalid ID format")
	}
	return id, nil
}

// ParseTimestamp parses an ISO-8601 date or date-time. Values without a zone are taken as UTC.
func ParseTimestamp(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperrors.NewValidationError(field, "Invalid "+field+": expected an ISO-8601 date")
}

// ParseDate parses a calendar date (YYYY-MM-DD, or a timestamp truncated to its date).
func ParseDate(field, raw string) (time.Time, error) {
	t, err := ParseTimestamp(field, raw)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ParseYear parses a four-digit calendar year.
func ParseYear(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) != 4 || !idPattern.MatchString(raw) {
		return 0, apperrors.NewValidationError(field, "Invalid "+field)
	}
	year, _ := strconv.Atoi(raw)
	if year < 1 {
		return 0, apperrors.NewValidationError(field, "Invalid "+field)
	}
	return year, nil
}
