package notionmark

import "time"

// DateLayout is the calendar date format used for the Published property.
const DateLayout = "2006-01-02"

// FormatDate formats the calendar date of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date in the local time zone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, Errorf(EINVALID, "invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}
