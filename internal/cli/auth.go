package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password and creates an account.
// The managers install a session for the new user, so a successful
// registration also logs in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Register(ctx, name, email, password)
	if err != nil {
		fmt.Println("Registration failed:", err)
		return err
	}

	a.user = user
	fmt.Printf("Welcome, %s!\n", user.Name)
	return nil
}

// Login prompts for credentials and authenticates.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		fmt.Println("Login failed:", err)
		return err
	}

	a.user = user
	fmt.Printf("Welcome back, %s!\n", user.Name)
	return nil
}

// Logout clears the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Println("Logout failed:", err)
		return err
	}
	a.user = nil
	fmt.Println("Logged out.")
	return nil
}
