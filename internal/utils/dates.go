package utils

import "time"

// DateLayout is the wire format for calendar dates across the API and the
// AI planning service.
const DateLayout = "2006-01-02"

// WeekStart returns the Monday of t's ISO week as a YYYY-MM-DD string.
func WeekStart(t time.Time) string {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // Sunday
	}
	return t.AddDate(0, 0, -(wd - 1)).Format(DateLayout)
}

// AddDays shifts a YYYY-MM-DD date by n days. The date must be valid.
func AddDays(date string, n int) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(DateLayout), nil
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
