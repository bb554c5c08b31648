package cli

import (
	"context"
	"fmt"
	"os"
	"time"
)

// Done toggles a goal's completed state.
func (a *App) Done(ctx context.Context) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	id, err := a.promptGoalID()
	if err != nil {
		return err
	}

	g, err := a.goals.ToggleComplete(ctx, id, a.user.ID)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	if g.Completed {
		fmt.Println("Completed:", formatGoalLine(*g))
	} else {
		fmt.Println("Re-opened:", formatGoalLine(*g))
	}
	return nil
}

// SetDate sets or clears a goal's completion date explicitly.
func (a *App) SetDate(ctx context.Context) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	id, err := a.promptGoalID()
	if err != nil {
		return err
	}

	dateStr, err := getSimpleText(a.reader, "Completion date yyyy-mm-dd ('-' to clear)", os.Stdout)
	if err != nil {
		return err
	}

	var date *time.Time
	if dateStr != "-" && dateStr != "" {
		d, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			fmt.Println("Not a valid date:", dateStr)
			return err
		}
		date = &d
	}

	g, err := a.goals.SetCompletionDate(ctx, id, a.user.ID, date)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Println("Updated:", formatGoalLine(*g))
	return nil
}
