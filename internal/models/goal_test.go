package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGoal() Goal {
	created := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	return Goal{
		ID:          1736499600000,
		OwnerID:     42,
		Title:       "Visit Japan",
		Description: "Tokyo and Kyoto",
		Photos:      []string{"photos/a.jpg"},
		Notes:       []Note{{Text: "save money", Date: created}},
		Icon:        DefaultIcon,
		Color:       DefaultColor,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func TestGoal_Clone_DoesNotShareSlices(t *testing.T) {
	g := sampleGoal()
	d := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	g.Date = &d

	c := g.Clone()
	c.Photos[0] = "photos/other.jpg"
	c.Notes[0].Text = "changed"
	*c.Date = c.Date.Add(time.Hour)

	assert.Equal(t, "photos/a.jpg", g.Photos[0])
	assert.Equal(t, "save money", g.Notes[0].Text)
	assert.Equal(t, d, *g.Date)
}

func TestGoal_ApplyUpdate_OnlyPresentFieldsChange(t *testing.T) {
	g := sampleGoal()
	now := g.UpdatedAt.Add(time.Hour)

	title := "Visit Japan in spring"
	g.ApplyUpdate(GoalUpdate{Title: &title}, now)

	assert.Equal(t, "Visit Japan in spring", g.Title)
	assert.Equal(t, "Tokyo and Kyoto", g.Description)
	assert.Equal(t, DefaultIcon, g.Icon)
	assert.Equal(t, DefaultColor, g.Color)
	assert.False(t, g.Completed)
	assert.Nil(t, g.Date)
	assert.Equal(t, now, g.UpdatedAt)
}

func TestGoal_ApplyUpdate_CompletionDateDrivesCompleted(t *testing.T) {
	g := sampleGoal()
	now := g.UpdatedAt.Add(time.Hour)
	done := time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)

	g.ApplyUpdate(GoalUpdate{SetCompletionDate: true, CompletionDate: &done}, now)
	require.NotNil(t, g.Date)
	assert.Equal(t, done, *g.Date)
	assert.True(t, g.Completed)

	// clearing the date also clears the flag
	g.ApplyUpdate(GoalUpdate{SetCompletionDate: true, CompletionDate: nil}, now)
	assert.Nil(t, g.Date)
	assert.False(t, g.Completed)
}

func TestGoal_Unmark_LeavesDateInPlace(t *testing.T) {
	g := sampleGoal()
	done := time.Date(2026, 5, 15, 12, 0, 0, 0, time.UTC)

	g.MarkCompleted(done)
	require.True(t, g.Completed)
	require.NotNil(t, g.Date)

	g.Unmark(done.Add(time.Hour))
	assert.False(t, g.Completed)
	require.NotNil(t, g.Date)
	assert.Equal(t, done, *g.Date)
}

func TestGoal_AddPhotoAndNote_IgnoreEmptyValues(t *testing.T) {
	g := sampleGoal()
	now := g.UpdatedAt.Add(time.Minute)

	g.AddPhoto("", now)
	g.AddNote("", now)
	assert.Len(t, g.Photos, 1)
	assert.Len(t, g.Notes, 1)
	assert.Equal(t, g.CreatedAt, g.UpdatedAt)

	g.AddPhoto("photos/b.jpg", now)
	g.AddNote("book flights", now)
	assert.Equal(t, []string{"photos/a.jpg", "photos/b.jpg"}, g.Photos)
	assert.Equal(t, "book flights", g.Notes[1].Text)
	assert.Equal(t, now, g.UpdatedAt)
}

func TestEncodeDecodeGoals_RoundTrip(t *testing.T) {
	g := sampleGoal()
	done := time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)
	g.Date = &done
	g.Completed = true

	empty := Goal{
		ID:        2,
		OwnerID:   7,
		Title:     "Learn to dive",
		Photos:    []string{},
		Notes:     []Note{},
		Icon:      DefaultIcon,
		Color:     DefaultColor,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.CreatedAt,
	}

	data, err := EncodeGoals([]Goal{g, empty})
	require.NoError(t, err)

	decoded, err := DecodeGoals(data)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, g, decoded[0])
	assert.Equal(t, empty, decoded[1])

	// empty sequences survive the trip as empty, not nil
	assert.NotNil(t, decoded[1].Photos)
	assert.NotNil(t, decoded[1].Notes)
}

func TestDecodeGoals_AbsentDataIsEmptyCollection(t *testing.T) {
	decoded, err := DecodeGoals(nil)
	require.NoError(t, err)
	assert.Empty(t, decoded)
	assert.NotNil(t, decoded)
}

func TestDecodeGoals_NormalizesNullArrays(t *testing.T) {
	raw := []byte(`[{"id":1,"owner_id":2,"title":"x","photos":null,"notes":null}]`)
	decoded, err := DecodeGoals(raw)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, []string{}, decoded[0].Photos)
	assert.Equal(t, []Note{}, decoded[0].Notes)
}
