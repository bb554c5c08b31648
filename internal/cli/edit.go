package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/eaportal/bucketlist/internal/models"
)

// dateLayout is the format accepted for completion/target dates.
const dateLayout = "2006-01-02"

// Edit prompts for new field values; an empty answer keeps the current
// value. For the date, "-" clears it (also re-opening the goal) and a
// yyyy-mm-dd value sets it (also completing the goal).
func (a *App) Edit(ctx context.Context) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	id, err := a.promptGoalID()
	if err != nil {
		return err
	}

	var upd models.GoalUpdate

	title, err := getSimpleText(a.reader, "New title (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if title != "" {
		upd.Title = &title
	}

	description, err := getSimpleText(a.reader, "New description (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if description != "" {
		upd.Description = &description
	}

	icon, err := getSimpleText(a.reader, "New icon (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if icon != "" {
		upd.Icon = &icon
	}

	color, err := getSimpleText(a.reader, "New color (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if color != "" {
		upd.Color = &color
	}

	dateStr, err := getSimpleText(a.reader, "Completion date yyyy-mm-dd ('-' to clear, empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	switch dateStr {
	case "":
	case "-":
		upd.SetCompletionDate = true
	default:
		d, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			fmt.Println("Not a valid date:", dateStr)
			return err
		}
		upd.SetCompletionDate = true
		upd.CompletionDate = &d
	}

	g, err := a.goals.Edit(ctx, id, a.user.ID, upd)
	if err != nil {
		fmt.Println("Edit failed:", err)
		return err
	}

	fmt.Println("Updated:", formatGoalLine(*g))
	return nil
}
