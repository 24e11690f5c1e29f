package note

import (
	"fmt"
	"strings"
	"time"
)

// DisplayLayout is how new notes are dated.
const DisplayLayout = "January 2, 2006"

var dateLayouts = []string{
	"2006-01-02",
	DisplayLayout,
	"Jan 2, 2006",
	time.RFC3339,
}

// ParseDate reads a note date in any of the accepted layouts and returns
// midnight UTC of that calendar day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
}

// FormatDate renders t the way the editor stamps new notes.
func FormatDate(t time.Time) string {
	return t.Format(DisplayLayout)
}
