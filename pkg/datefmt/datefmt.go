// Package datefmt converts between the YYYY-MM-DD format clients send and the
// DD-MON-YY upper-case text format the patients table stores, e.g.
// "2024-01-05" <-> "05-JAN-24".
package datefmt

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// InputLayout is the canonical client-facing date format.
	InputLayout = "2006-01-02"
	// StoredLayout is the stored appointment date format, upper-cased after
	// formatting.
	StoredLayout = "02-Jan-06"
	// TimeLayout is the default textual form for appointment times.
	TimeLayout = "15:04:05"
)

var inputPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsInputFormat reports whether s matches the strict YYYY-MM-DD pattern.
func IsInputFormat(s string) bool {
	return inputPattern.MatchString(s)
}

// FormatStored renders t in the stored DD-MON-YY upper-case form.
func FormatStored(t time.Time) string {
	return strings.ToUpper(t.Format(StoredLayout))
}

// ReformatInput parses a YYYY-MM-DD date and re-renders it in the stored
// form. A parse failure is returned to the caller, never panicked.
func ReformatInput(s string) (string, error) {
	t, err := time.Parse(InputLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid appointment date %q: expected format YYYY-MM-DD", s)
	}
	return FormatStored(t), nil
}

// FormatInput renders t in the client-facing YYYY-MM-DD form.
func FormatInput(t time.Time) string {
	return t.Format(InputLayout)
}

// FormatTime renders the default appointment time text for t.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}
