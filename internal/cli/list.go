package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/eaportal/bucketlist/internal/models"
)

var errNotLoggedIn = errors.New("not logged in")

// requireUser guards commands that need a session.
func (a *App) requireUser() error {
	if a.user == nil {
		fmt.Println("Please login first.")
		return errNotLoggedIn
	}
	return nil
}

// promptGoalID asks for a goal id and parses it.
func (a *App) promptGoalID() (int64, error) {
	s, err := getSimpleText(a.reader, "Enter goal id", os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fmt.Println("Not a valid id:", s)
		return 0, err
	}
	return id, nil
}

func formatGoalLine(g models.Goal) string {
	mark := " "
	if g.Completed {
		mark = "x"
	}
	date := ""
	if g.Date != nil {
		date = " " + g.Date.Format("2006-01-02")
	}
	return fmt.Sprintf("[%s] %d %s %s%s", mark, g.ID, g.Icon, g.Title, date)
}

// List prints the current user's goals in insertion order.
func (a *App) List(ctx context.Context) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	goals, err := a.goals.ByUser(ctx, a.user.ID)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	if len(goals) == 0 {
		fmt.Println("No goals yet. Try 'add'.")
		return nil
	}
	for _, g := range goals {
		fmt.Println(formatGoalLine(g))
	}
	return nil
}

// Show prints one goal in full: description, dates, photos and notes.
func (a *App) Show(ctx context.Context) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	id, err := a.promptGoalID()
	if err != nil {
		return err
	}

	g, err := a.goals.ByID(ctx, id, a.user.ID)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}
	if g == nil {
		fmt.Println("No such goal.")
		return nil
	}

	fmt.Println(formatGoalLine(*g))
	if g.Description != "" {
		fmt.Println(g.Description)
	}
	fmt.Println("color:", g.Color)
	fmt.Println("created:", g.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println("updated:", g.UpdatedAt.Format("2006-01-02 15:04"))
	for _, p := range g.Photos {
		fmt.Println("photo:", p)
	}
	for _, n := range g.Notes {
		fmt.Printf("note (%s): %s\n", n.Date.Format("2006-01-02"), n.Text)
	}
	return nil
}
