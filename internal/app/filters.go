package app

import (
	"context"
	"strconv"
	"strings"

	"github.com/specialistvlad/bikeshare/internal/ctxlog"
	"github.com/specialistvlad/bikeshare/internal/registry"
	"github.com/specialistvlad/bikeshare/internal/report"
	"github.com/specialistvlad/bikeshare/internal/trips"
)

// selection is what the user asked to analyse in one pass.
type selection struct {
	Source registry.Source
	Filter trips.Filter
}

// collectFilters asks for a city, a filter mode and the month and/or day the
// mode calls for. Invalid answers are corrected by asking again.
func (a *App) collectFilters(ctx context.Context) (selection, error) {
	logger := ctxlog.FromContext(ctx)
	a.prompter.Say("Hello! Let's explore some US bikeshare data!")

	var sel selection
	cityQuestion := "Please enter a city (" + strings.Join(a.registry.Cities(), ", ") + "): "
	city, err := a.prompter.Choose(cityQuestion, func(answer string) (bool, string) {
		if _, ok := a.registry.Lookup(answer); ok {
			return true, ""
		}
		return false, "That's not a valid city. Try again."
	})
	if err != nil {
		return sel, err
	}
	sel.Source, _ = a.registry.Lookup(city)

	mode, err := a.prompter.Choose("Would you like to filter by month, day, both, or none? ", func(answer string) (bool, string) {
		switch strings.ToLower(answer) {
		case "month", "day", "both", "none":
			return true, ""
		}
		return false, ""
	})
	if err != nil {
		return sel, err
	}
	mode = strings.ToLower(mode)

	if mode == "month" || mode == "both" {
		answer, err := a.prompter.Choose("Which month? (January to June): ", func(answer string) (bool, string) {
			if _, err := trips.ParseMonth(answer); err != nil {
				return false, "Invalid month. Please try again."
			}
			return true, ""
		})
		if err != nil {
			return sel, err
		}
		sel.Filter.Month, _ = trips.ParseMonth(answer)
	}

	if mode == "day" || mode == "both" {
		answer, err := a.prompter.Choose("Enter a day as an integer (1=Sunday, 7=Saturday): ", func(answer string) (bool, string) {
			day, err := strconv.Atoi(answer)
			if err != nil {
				return false, "That's not a number. Try again."
			}
			if day < 1 || day > 7 {
				return false, "Day must be between 1 and 7."
			}
			return true, ""
		})
		if err != nil {
			return sel, err
		}
		sel.Filter.Day, _ = strconv.Atoi(answer)
	}

	a.prompter.Say("%s", report.Separator)
	logger.Debug("Filters collected.", "city", sel.Source.City, "mode", mode, "filter", sel.Filter.String())
	return sel, nil
}
