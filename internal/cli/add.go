package cli

import (
	"context"
	"fmt"
	"os"
)

// Add prompts for the new goal's fields and creates it. Icon and color may
// be left empty to get the defaults.
func (a *App) Add(ctx context.Context) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	icon, err := getSimpleText(a.reader, "Icon emoji (optional)", os.Stdout)
	if err != nil {
		return err
	}
	color, err := getSimpleText(a.reader, "Card color, hex (optional)", os.Stdout)
	if err != nil {
		return err
	}

	g, err := a.goals.Add(ctx, a.user.ID, title, description, nil, icon, color)
	if err != nil {
		fmt.Println("Could not add goal:", err)
		return err
	}

	fmt.Println("Added:", formatGoalLine(*g))
	return nil
}
