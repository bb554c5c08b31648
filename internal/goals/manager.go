// Package goals owns the goal collection: CRUD and completion state,
// always scoped by an explicit owner id.
package goals

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eaportal/bucketlist/internal/clock"
	"github.com/eaportal/bucketlist/internal/common"
	"github.com/eaportal/bucketlist/internal/logging"
	"github.com/eaportal/bucketlist/internal/models"
	"github.com/eaportal/bucketlist/internal/storage"
)

// Manager handles goal lifecycle. Every lookup and mutation filters by
// both goal id and owner id, so a user can never reach another user's goal
// even with a known id. Mutations follow read-modify-persist-return-copy:
// the in-memory slice is the source of truth and the whole collection is
// rewritten on every change. Not safe for concurrent use.
type Manager struct {
	store storage.Store
	log   logging.Logger
	clock clock.Clock
	seq   *clock.Sequence
	goals []models.Goal
}

// NewManager loads the persisted goal collection.
func NewManager(ctx context.Context, store storage.Store, log logging.Logger, clk clock.Clock) (*Manager, error) {
	m := &Manager{
		store: store,
		log:   log.With("component", "goals"),
		clock: clk,
		seq:   clock.NewSequence(clk),
	}

	data, err := store.Get(ctx, storage.KeyGoals)
	if err != nil {
		return nil, fmt.Errorf("failed to load goals: %w", err)
	}
	m.goals, err = models.DecodeGoals(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode goals: %w", err)
	}
	return m, nil
}

// Add creates a goal for ownerID. The title must be non-blank
// (common.ErrorValidation otherwise); icon and color fall back to the
// defaults when empty. The new goal starts uncompleted with no notes.
func (m *Manager) Add(ctx context.Context, ownerID int64, title, description string, photos []string, icon, color string) (*models.Goal, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("add goal: title: %w", common.ErrorValidation)
	}
	if icon == "" {
		icon = models.DefaultIcon
	}
	if color == "" {
		color = models.DefaultColor
	}

	now := m.clock.Now()
	g := models.Goal{
		ID:          m.seq.Next(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Photos:      append([]string{}, photos...),
		Notes:       []models.Note{},
		Icon:        icon,
		Color:       color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	m.goals = append(m.goals, g)
	if err := m.saveGoals(ctx); err != nil {
		m.goals = m.goals[:len(m.goals)-1]
		return nil, err
	}

	m.log.Info(ctx, "goal created", "id", g.ID, "owner", ownerID)
	out := g.Clone()
	return &out, nil
}

// ByUser returns copies of all goals owned by ownerID, in insertion order.
func (m *Manager) ByUser(ctx context.Context, ownerID int64) ([]models.Goal, error) {
	out := []models.Goal{}
	for _, g := range m.goals {
		if g.OwnerID == ownerID {
			out = append(out, g.Clone())
		}
	}
	return out, nil
}

// ByID returns a copy of the goal matching both id and ownerID, or
// (nil, nil) when there is no such goal. A miss is not an error here:
// "absent" and "not yours" are deliberately indistinguishable.
func (m *Manager) ByID(ctx context.Context, id, ownerID int64) (*models.Goal, error) {
	i := m.find(id, ownerID)
	if i < 0 {
		return nil, nil
	}
	g := m.goals[i].Clone()
	return &g, nil
}

// Edit applies the present fields of upd to the matching goal.
// Fails with common.ErrorNotFound when no goal matches id and ownerID.
func (m *Manager) Edit(ctx context.Context, id, ownerID int64, upd models.GoalUpdate) (*models.Goal, error) {
	return m.mutate(ctx, id, ownerID, "edit goal", func(g *models.Goal) {
		g.ApplyUpdate(upd, m.clock.Now())
	})
}

// ToggleComplete flips the completed flag. Completing stamps the date with
// the current time; un-completing leaves the old date in place, matching
// the documented (non-clearing) policy.
func (m *Manager) ToggleComplete(ctx context.Context, id, ownerID int64) (*models.Goal, error) {
	return m.mutate(ctx, id, ownerID, "toggle goal", func(g *models.Goal) {
		now := m.clock.Now()
		if g.Completed {
			g.Unmark(now)
		} else {
			g.MarkCompleted(now)
		}
	})
}

// SetCompletionDate sets the goal's date and derives the completed flag
// from it: a non-nil date completes the goal, nil re-opens it.
func (m *Manager) SetCompletionDate(ctx context.Context, id, ownerID int64, date *time.Time) (*models.Goal, error) {
	return m.mutate(ctx, id, ownerID, "set completion date", func(g *models.Goal) {
		g.ApplyUpdate(models.GoalUpdate{SetCompletionDate: true, CompletionDate: date}, m.clock.Now())
	})
}

// AddPhoto appends a photo reference to the goal.
func (m *Manager) AddPhoto(ctx context.Context, id, ownerID int64, ref string) (*models.Goal, error) {
	if ref == "" {
		return nil, fmt.Errorf("add photo: %w", common.ErrorValidation)
	}
	return m.mutate(ctx, id, ownerID, "add photo", func(g *models.Goal) {
		g.AddPhoto(ref, m.clock.Now())
	})
}

// AddNote appends a dated note to the goal.
func (m *Manager) AddNote(ctx context.Context, id, ownerID int64, text string) (*models.Goal, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("add note: %w", common.ErrorValidation)
	}
	return m.mutate(ctx, id, ownerID, "add note", func(g *models.Goal) {
		g.AddNote(text, m.clock.Now())
	})
}

// Delete removes the goal permanently. Fails with common.ErrorNotFound
// when no goal matches id and ownerID, including goals already deleted.
func (m *Manager) Delete(ctx context.Context, id, ownerID int64) error {
	i := m.find(id, ownerID)
	if i < 0 {
		return fmt.Errorf("delete goal %d: %w", id, common.ErrorNotFound)
	}

	removed := m.goals[i]
	m.goals = append(m.goals[:i], m.goals[i+1:]...)
	if err := m.saveGoals(ctx); err != nil {
		m.goals = append(m.goals[:i], append([]models.Goal{removed}, m.goals[i:]...)...)
		return err
	}

	m.log.Info(ctx, "goal deleted", "id", id, "owner", ownerID)
	return nil
}

func (m *Manager) find(id, ownerID int64) int {
	for i, g := range m.goals {
		if g.ID == id && g.OwnerID == ownerID {
			return i
		}
	}
	return -1
}

// mutate locates the goal, applies fn to it in place, persists the full
// collection and returns a copy. On a persistence failure the previous
// value is restored so a failed call leaves no trace.
func (m *Manager) mutate(ctx context.Context, id, ownerID int64, op string, fn func(g *models.Goal)) (*models.Goal, error) {
	i := m.find(id, ownerID)
	if i < 0 {
		return nil, fmt.Errorf("%s %d: %w", op, id, common.ErrorNotFound)
	}

	prev := m.goals[i].Clone()
	fn(&m.goals[i])
	if err := m.saveGoals(ctx); err != nil {
		m.goals[i] = prev
		return nil, err
	}

	out := m.goals[i].Clone()
	return &out, nil
}

func (m *Manager) saveGoals(ctx context.Context) error {
	data, err := models.EncodeGoals(m.goals)
	if err != nil {
		return fmt.Errorf("failed to encode goals: %w", err)
	}
	if err := m.store.Set(ctx, storage.KeyGoals, data); err != nil {
		return fmt.Errorf("failed to save goals: %w", err)
	}
	return nil
}
