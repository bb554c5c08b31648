package cli

import (
	"context"
	"fmt"
	"os"
)

// Note attaches a dated text note to a goal.
func (a *App) Note(ctx context.Context) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	id, err := a.promptGoalID()
	if err != nil {
		return err
	}

	text, err := GetMultiline(a.reader, "Note text", os.Stdout)
	if err != nil {
		return err
	}

	g, err := a.goals.AddNote(ctx, id, a.user.ID, text)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Printf("Note added (%d on this goal).\n", len(g.Notes))
	return nil
}
