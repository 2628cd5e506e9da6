package nbadata

import (
	"fmt"
	"time"
)

// Date layouts used across the system.
const (
	// APIDateLayout is what stats.nba.com accepts in date parameters.
	APIDateLayout = "01/02/2006"

	// FileDateLayout is used in blob names.
	FileDateLayout = "2006-01-02"

	// NumericDateLayout is used on the command line.
	NumericDateLayout = "20060102"

	// gameDateLayout is how leaguegamelog reports GAME_DATE.
	gameDateLayout = "2006-01-02"
)

// ParseDate accepts a date in NumericDateLayout or FileDateLayout and returns midnight UTC of that day.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range []string{NumericDateLayout, FileDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("ParseDate: %q is neither YYYYMMDD nor YYYY-MM-DD", s)
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Season returns the season identifier ("2019-20") that a date falls in.
// Seasons roll over on the first of August.
func Season(t time.Time) string {
	start := t.Year()
	if t.Month() < time.August {
		start--
	}
	return fmt.Sprintf("%d-%02d", start, (start+1)%100)
}
