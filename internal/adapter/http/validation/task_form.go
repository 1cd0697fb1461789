package validation

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidTaskField = errors.New("invalid task field")

// Date parses an optional form date. Empty input means the field was
// left blank and maps to nil.
func Date(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, ErrInvalidTaskField
	}
	return &parsed, nil
}

// StartTime parses an optional "HH:MM" value. The string form is kept,
// only its shape is checked.
func StartTime(value string) (*string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if _, err := time.Parse("15:04", value); err != nil {
		return nil, ErrInvalidTaskField
	}
	return &value, nil
}

// HexColor accepts an optional "#rrggbb" override.
func HexColor(value string) (*string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if len(value) != 7 || value[0] != '#' {
		return nil, ErrInvalidTaskField
	}
	for _, r := range value[1:] {
		if !isHexDigit(r) {
			return nil, ErrInvalidTaskField
		}
	}
	normalized := strings.ToLower(value)
	return &normalized, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
