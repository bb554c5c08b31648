package cli

import (
	"context"
	"fmt"
	"os"
)

// Delete removes a goal after a confirmation prompt.
func (a *App) Delete(ctx context.Context) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	id, err := a.promptGoalID()
	if err != nil {
		return err
	}

	answer, err := getSimpleText(a.reader, "Delete this goal permanently? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "Y" {
		fmt.Println("Kept.")
		return nil
	}

	if err := a.goals.Delete(ctx, id, a.user.ID); err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Println("Deleted.")
	return nil
}
