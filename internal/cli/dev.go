package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/eaportal/bucketlist/internal/models"
)

var errNotDeveloper = errors.New("developer account required")

// requireDeveloper gates the cross-user commands. This is the only place
// the developer flag is enforced; the managers themselves will serve
// anyone who asks.
func (a *App) requireDeveloper() error {
	if err := a.requireUser(); err != nil {
		return err
	}
	if !a.user.IsDeveloper {
		fmt.Println("Developer account required.")
		return errNotDeveloper
	}
	return nil
}

// Users lists every account with its goal count.
func (a *App) Users(ctx context.Context) error {
	if err := a.requireDeveloper(); err != nil {
		return err
	}

	users, err := a.auth.AllUsers(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	for _, u := range users {
		goals, err := a.goals.ByUser(ctx, u.ID)
		if err != nil {
			fmt.Println("Error:", err)
			return err
		}
		flag := ""
		if u.IsDeveloper {
			flag = " [dev]"
		}
		fmt.Printf("%d  %s <%s>%s  %d goals\n", u.ID, u.Name, u.Email, flag, len(goals))
	}
	return nil
}

// Impersonate installs a session for an arbitrary user id, without
// credentials. Everything afterwards behaves as if that user had logged
// in, including goal listing and editing.
func (a *App) Impersonate(ctx context.Context) error {
	if err := a.requireDeveloper(); err != nil {
		return err
	}

	s, err := getSimpleText(a.reader, "Enter user id to impersonate", os.Stdout)
	if err != nil {
		return err
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fmt.Println("Not a valid id:", s)
		return err
	}

	if err := a.auth.SetSession(ctx, models.Session{UserID: id}); err != nil {
		fmt.Println("Error:", err)
		return err
	}

	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Println("No user with that id; session is now stale.")
	} else {
		fmt.Printf("Now acting as %s <%s>.\n", user.Name, user.Email)
	}
	a.user = user
	return nil
}
