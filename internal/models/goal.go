package models

import (
	"encoding/json"
	"time"
)

// Defaults applied when a goal is created without an icon or card color.
const (
	DefaultIcon  = "⭐"
	DefaultColor = "#ffffff"
)

// Note is one dated text note attached to a goal.
type Note struct {
	Text string    `json:"text"`
	Date time.Time `json:"date"`
}

// Goal is a single bucket-list item owned by exactly one user.
//
// Date is overloaded: for an open goal it may hold a target date, for a
// completed goal the completion timestamp. Completed=true implies Date is
// set; the reverse does not hold, since un-completing a goal through
// ToggleComplete leaves the old date in place.
type Goal struct {
	ID          int64      `json:"id"`
	OwnerID     int64      `json:"owner_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
	Photos      []string   `json:"photos"`
	Notes       []Note     `json:"notes"`
	Completed   bool       `json:"completed"`
	Icon        string     `json:"icon"`
	Color       string     `json:"color"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// GoalUpdate carries a partial edit: only fields with a non-nil pointer are
// applied, so an omitted field leaves the goal's value unchanged.
//
// The completion date needs three states (absent, clear, set), which two
// pointer levels would make awkward; SetCompletionDate marks the field as
// present and CompletionDate carries the nullable value. When present, the
// goal's Completed flag is derived from whether the date is nil.
type GoalUpdate struct {
	Title       *string
	Description *string
	Icon        *string
	Color       *string

	SetCompletionDate bool
	CompletionDate    *time.Time
}

// Clone returns a deep copy, so callers can hand out goals without sharing
// the manager's backing slices.
func (g Goal) Clone() Goal {
	c := g
	c.Photos = append([]string{}, g.Photos...)
	c.Notes = append([]Note{}, g.Notes...)
	if g.Date != nil {
		d := *g.Date
		c.Date = &d
	}
	return c
}

// MarkCompleted sets the goal as done at the given completion time.
func (g *Goal) MarkCompleted(completedAt time.Time) {
	g.Completed = true
	d := completedAt
	g.Date = &d
	g.UpdatedAt = completedAt
}

// Unmark clears the completed flag. The date is intentionally left as-is.
func (g *Goal) Unmark(now time.Time) {
	g.Completed = false
	g.UpdatedAt = now
}

// AddPhoto appends a photo reference.
func (g *Goal) AddPhoto(ref string, now time.Time) {
	if ref == "" {
		return
	}
	g.Photos = append(g.Photos, ref)
	g.UpdatedAt = now
}

// AddNote appends a dated note.
func (g *Goal) AddNote(text string, now time.Time) {
	if text == "" {
		return
	}
	g.Notes = append(g.Notes, Note{Text: text, Date: now})
	g.UpdatedAt = now
}

// ApplyUpdate applies the present fields of u and refreshes UpdatedAt.
func (g *Goal) ApplyUpdate(u GoalUpdate, now time.Time) {
	if u.Title != nil {
		g.Title = *u.Title
	}
	if u.Description != nil {
		g.Description = *u.Description
	}
	if u.Icon != nil {
		g.Icon = *u.Icon
	}
	if u.Color != nil {
		g.Color = *u.Color
	}
	if u.SetCompletionDate {
		g.Date = u.CompletionDate
		g.Completed = u.CompletionDate != nil
	}
	g.UpdatedAt = now
}

// EncodeGoals serializes the full goal collection to its persisted form,
// a JSON array of goal records.
func EncodeGoals(goals []Goal) ([]byte, error) {
	if goals == nil {
		goals = []Goal{}
	}
	return json.Marshal(goals)
}

// DecodeGoals parses the persisted goal collection. Absent or empty data
// decodes to an empty slice, and nil photo/note arrays on individual
// records are normalized to empty slices.
func DecodeGoals(data []byte) ([]Goal, error) {
	goals := []Goal{}
	if len(data) == 0 {
		return goals, nil
	}
	if err := json.Unmarshal(data, &goals); err != nil {
		return nil, err
	}
	for i := range goals {
		if goals[i].Photos == nil {
			goals[i].Photos = []string{}
		}
		if goals[i].Notes == nil {
			goals[i].Notes = []Note{}
		}
	}
	return goals, nil
}
