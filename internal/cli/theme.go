package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"adminboard/internal/models"
	"adminboard/internal/prefs"
)

// Theme prints the current display preferences.
func (a *App) Theme(ctx context.Context) error {
	p := a.prefs.Current()
	printlnFn(fmt.Sprintf("mode=%s color=%s container=%s sidebar=%s radius=%d",
		p.Mode, p.Color, p.Container, p.Sidebar, p.BorderRadius))
	return nil
}

// SetTheme prompts for one preference and its new value.
func (a *App) SetTheme(ctx context.Context) error {
	setting, err := getSimpleText(a.reader, "Setting (mode/color/container/sidebar/radius)", os.Stdout)
	if err != nil {
		return err
	}
	value, err := getSimpleText(a.reader, "Value", os.Stdout)
	if err != nil {
		return err
	}

	switch setting {
	case "mode":
		err = a.prefs.SetMode(ctx, models.Mode(value))
	case "color":
		err = a.prefs.SetColor(ctx, models.Color(value))
	case "container":
		err = a.prefs.SetContainer(ctx, models.Container(value))
	case "sidebar":
		err = a.prefs.SetSidebar(ctx, models.Sidebar(value))
	case "radius":
		radius, convErr := strconv.Atoi(value)
		if convErr != nil {
			printlnFn("radius must be a number")
			return nil
		}
		err = a.prefs.SetBorderRadius(ctx, models.BorderRadius(radius))
	default:
		printlnFn("Unknown setting:", setting)
		return nil
	}

	if err != nil {
		if errors.Is(err, prefs.ErrInvalidPreference) {
			printlnFn(err.Error())
			return nil
		}
		return err
	}
	return a.Theme(ctx)
}

// ResetTheme restores the default preferences.
func (a *App) ResetTheme(ctx context.Context) error {
	a.prefs.Reset(ctx)
	return a.Theme(ctx)
}
