package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Photo attaches a local image to a goal. The file is copied into the data
// directory under a generated name and the goal stores that reference, so
// the original can move or disappear without breaking the list.
func (a *App) Photo(ctx context.Context) error {
	if err := a.requireUser(); err != nil {
		return err
	}

	id, err := a.promptGoalID()
	if err != nil {
		return err
	}

	path, err := getSimpleText(a.reader, "Path to image file", os.Stdout)
	if err != nil {
		return err
	}

	ref, err := a.importPhoto(path)
	if err != nil {
		fmt.Println("Could not import photo:", err)
		return err
	}

	g, err := a.goals.AddPhoto(ctx, id, a.user.ID, ref)
	if err != nil {
		fmt.Println("Error:", err)
		return err
	}

	fmt.Printf("Photo added (%d on this goal).\n", len(g.Photos))
	return nil
}

// importPhoto copies src into <dataDir>/photos and returns the stored
// reference, relative to the data directory.
func (a *App) importPhoto(src string) (string, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", src, err)
	}

	dir := filepath.Join(a.config.DataDir, "photos")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create photos dir: %w", err)
	}

	name := uuid.NewString() + filepath.Ext(src)
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
		return "", fmt.Errorf("failed to store photo: %w", err)
	}
	return filepath.Join("photos", name), nil
}
