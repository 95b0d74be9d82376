// Package catalog loads the tutor and goal catalogs and serves read-only queries over them.
package catalog

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"tutor-catalog/internal/apperror"
	"tutor-catalog/internal/model"
)

// Catalog is the immutable set of tutors and goals loaded at startup.
type Catalog struct {
	tutors []model.Tutor
	goals  model.GoalCatalog
}

// Load reads the tutor and goal files. Any missing or malformed file, or two
// tutors sharing an id, is reported as apperror.ErrStartup.
func Load(teachersPath, goalsPath string) (*Catalog, error) {
	var tutors []model.Tutor
	if err := readJSON(teachersPath, &tutors); err != nil {
		return nil, err
	}

	var goals model.GoalCatalog
	if err := readJSON(goalsPath, &goals); err != nil {
		return nil, err
	}
	if goals == nil {
		return nil, fmt.Errorf("%w: %s: goal catalog is empty", apperror.ErrStartup, goalsPath)
	}

	return New(tutors, goals)
}

// New builds a catalog from already decoded data.
func New(tutors []model.Tutor, goals model.GoalCatalog) (*Catalog, error) {
	seen := make(map[int]struct{}, len(tutors))
	for _, t := range tutors {
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate tutor id %d", apperror.ErrStartup, t.ID)
		}
		seen[t.ID] = struct{}{}
	}

	c := &Catalog{
		tutors: make([]model.Tutor, len(tutors)),
		goals:  make(model.GoalCatalog, len(goals)),
	}
	copy(c.tutors, tutors)
	for id, label := range goals {
		c.goals[id] = label
	}
	return c, nil
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrStartup, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %s: %v", apperror.ErrStartup, path, err)
	}
	return nil
}

// All returns every tutor in catalog order.
func (c *Catalog) All() []model.Tutor {
	out := make([]model.Tutor, len(c.tutors))
	copy(out, c.tutors)
	return out
}

// Sample returns min(n, size) distinct tutors in a fresh random order.
func (c *Catalog) Sample(n int) []model.Tutor {
	out := c.All()
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if n < 0 {
		n = 0
	}
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// ByGoal returns the tutors tagged with goal, in catalog order.
func (c *Catalog) ByGoal(goal string) []model.Tutor {
	out := make([]model.Tutor, 0)
	for _, t := range c.tutors {
		if t.HasGoal(goal) {
			out = append(out, t)
		}
	}
	return out
}

// ByID looks a tutor up by id.
func (c *Catalog) ByID(id int) (model.Tutor, error) {
	for _, t := range c.tutors {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Tutor{}, fmt.Errorf("tutor %d: %w", id, apperror.ErrNotFound)
}

// Goals returns a copy of the goal catalog.
func (c *Catalog) Goals() model.GoalCatalog {
	out := make(model.GoalCatalog, len(c.goals))
	for id, label := range c.goals {
		out[id] = label
	}
	return out
}

// GoalLabel resolves a goal identifier to its display label.
func (c *Catalog) GoalLabel(id string) (string, bool) {
	label, ok := c.goals[id]
	return label, ok
}
