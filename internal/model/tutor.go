// Package model holds the catalog and submission types shared across the app.
package model

import (
	"sort"
	"strconv"
	"strings"
)

// Tutor is a single catalog entry as stored in the teachers file.
type Tutor struct {
	ID      int                        `json:"id"`
	Name    string                     `json:"name"`
	About   string                     `json:"about"`
	Rating  float64                    `json:"rating"`
	Picture string                     `json:"picture"`
	Price   int                        `json:"price"`
	Goals   []string                   `json:"goals"`
	Free    map[string]map[string]bool `json:"free"`
}

// GoalCatalog maps a goal identifier to its display label.
type GoalCatalog map[string]string

// HasGoal reports whether the tutor is tagged with goal.
func (t Tutor) HasGoal(goal string) bool {
	for _, g := range t.Goals {
		if g == goal {
			return true
		}
	}
	return false
}

// FreeSlots returns the available times of day, earliest first.
func (t Tutor) FreeSlots(day string) []string {
	slots := make([]string, 0, len(t.Free[day]))
	for at, free := range t.Free[day] {
		if free {
			slots = append(slots, at)
		}
	}
	sort.Slice(slots, func(i, j int) bool {
		return minutes(slots[i]) < minutes(slots[j])
	})
	return slots
}

// minutes converts "H:MM" into minutes since midnight; malformed values sort last.
func minutes(clock string) int {
	h, m, ok := strings.Cut(clock, ":")
	if !ok {
		return 1 << 30
	}
	hh, err := strconv.Atoi(h)
	if err != nil {
		return 1 << 30
	}
	mm, err := strconv.Atoi(m)
	if err != nil {
		return 1 << 30
	}
	return hh*60 + mm
}
