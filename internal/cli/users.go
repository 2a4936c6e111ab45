package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"adminboard/internal/models"
	"adminboard/internal/roster"
)

// Users lists the managed roster.
func (a *App) Users(ctx context.Context) error {
	users, err := a.roster.Fetch(ctx)
	if err != nil {
		return err
	}

	for _, u := range users {
		lastLogin := "never"
		if u.LastLogin != nil {
			lastLogin = u.LastLogin.Format("2006-01-02")
		}
		printlnFn(fmt.Sprintf("%-38s %-28s %-8s %-8s last login: %s",
			u.ID, u.Email, u.Role, u.Status, lastLogin))
	}
	return nil
}

// AddUser prompts for the new roster entry's fields.
func (a *App) AddUser(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Enter role (admin/manager/user)", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.roster.Add(ctx, roster.AddParams{
		Email:  email,
		Name:   name,
		Role:   models.Role(role),
		Status: models.StatusPending,
	})
	if err != nil {
		if errors.Is(err, roster.ErrEmailExists) {
			printlnFn(err.Error())
			return nil
		}
		return err
	}
	printlnFn("Added", user.Email, "with id", user.ID)
	return nil
}

// RemoveUser deletes a roster entry by id.
func (a *App) RemoveUser(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.roster.Delete(ctx, id); err != nil {
		if errors.Is(err, roster.ErrNotFound) {
			printlnFn(err.Error())
			return nil
		}
		return err
	}
	printlnFn("Deleted", id)
	return nil
}
