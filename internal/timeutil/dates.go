package timeutil

import "time"

// Common layouts for plan dates
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006"
)

// Today returns the current date in ISO form (YYYY-MM-DD).
func Today() string {
	return time.Now().Format(DateLayout)
}

// FormatDate formats a time as an ISO date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses an ISO date string. An empty string is treated as the
// zero time (epoch) so that unset dates sort before every real date.
func ParseDate(value string) time.Time {
	if value == "" {
		return time.Unix(0, 0).UTC()
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Unix(0, 0).UTC()
	}
	return t
}

// DisplayDate converts an ISO date string to the human-readable layout used
// in PDF exports. Unparseable values pass through unchanged.
func DisplayDate(value string) string {
	if value == "" {
		return ""
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return value
	}
	return t.Format(DisplayLayout)
}

// IsBefore reports whether date a falls strictly before date b, both given
// as ISO date strings.
func IsBefore(a, b string) bool {
	return ParseDate(a).Before(ParseDate(b))
}
