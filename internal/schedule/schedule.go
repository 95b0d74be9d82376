// Package schedule knows weekday identifiers, their display names and the compact time format used in URLs.
package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"tutor-catalog/internal/apperror"
)

// Day pairs a weekday identifier with its display name.
type Day struct {
	ID   string
	Name string
}

// Week lists the weekdays in display order.
var Week = []Day{
	{ID: "mon", Name: "Понедельник"},
	{ID: "tue", Name: "Вторник"},
	{ID: "wed", Name: "Среда"},
	{ID: "thu", Name: "Четверг"},
	{ID: "fri", Name: "Пятница"},
	{ID: "sat", Name: "Суббота"},
	{ID: "sun", Name: "Воскресенье"},
}

// DayName returns the display name of a weekday identifier.
func DayName(id string) (string, bool) {
	for _, d := range Week {
		if d.ID == id {
			return d.Name, true
		}
	}
	return "", false
}

// ParseCompact turns a URL time segment such as "1400" or "800" into "14:00" or "8:00"
// by inserting a colon before the last two digits.
func ParseCompact(s string) (string, error) {
	if len(s) < 3 || len(s) > 4 {
		return "", fmt.Errorf("time %q: %w", s, apperror.ErrNotFound)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("time %q: %w", s, apperror.ErrNotFound)
		}
	}
	h, m := s[:len(s)-2], s[len(s)-2:]
	if hh, _ := strconv.Atoi(h); hh > 23 {
		return "", fmt.Errorf("time %q: %w", s, apperror.ErrNotFound)
	}
	if mm, _ := strconv.Atoi(m); mm > 59 {
		return "", fmt.Errorf("time %q: %w", s, apperror.ErrNotFound)
	}
	return h + ":" + m, nil
}

// Compact is the inverse of ParseCompact.
func Compact(clock string) string {
	return strings.ReplaceAll(clock, ":", "")
}
