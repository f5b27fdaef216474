package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/wartung/internal/calendar"
	"github.com/alexanderramin/wartung/internal/cli/formatter"
	"github.com/alexanderramin/wartung/internal/domain"
	"github.com/alexanderramin/wartung/internal/service"
	"github.com/spf13/cobra"
)

type calendarOptions struct {
	anchor     time.Time
	shift      int
	weeks      int
	mode       viewModeValue
	techs      []string
	allTechs   bool
	unassigned bool
	statuses   []string
	tours      bool
}

func newCalendarCmd(app *App) *cobra.Command {
	opts := calendarOptions{mode: viewModeValue(calendar.ViewColumns)}

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the maintenance calendar",
		Long: "Show the maintenance calendar for 1-4 weeks starting at the week of --anchor\n" +
			"(default: the current week). --shift moves the window by whole weeks.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			roster, err := app.Planning.Technicians(ctx)
			if err != nil {
				return err
			}
			filter, err := opts.filter(roster)
			if err != nil {
				return err
			}

			now := app.now()
			anchor := calendar.TodayAnchor(now)
			if !opts.anchor.IsZero() {
				anchor = opts.anchor
			}
			anchor = calendar.ShiftWeeks(anchor, opts.shift)

			weeks := opts.weeks
			if !cmd.Flags().Changed("weeks") {
				weeks = app.defaultWeeks()
			}

			view, err := app.Planning.Calendar(ctx, service.CalendarRequest{
				Anchor: anchor,
				Weeks:  weeks,
				Mode:   calendar.ViewMode(opts.mode),
				Filter: filter,
				Now:    now,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatCalendar(view.Grid, view.Technicians, view.Filter))
			if opts.tours {
				fmt.Fprintln(out)
				fmt.Fprint(out, formatter.FormatDayTours(view.Grid))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Var(newDateValue(&opts.anchor, app.location()), "anchor", "Any day of the first week (YYYY-MM-DD)")
	f.IntVar(&opts.shift, "shift", 0, "Move the window by N weeks (negative goes back)")
	f.IntVar(&opts.weeks, "weeks", calendar.MaxWeeks, "Number of weeks (1-4)")
	f.Var(&opts.mode, "mode", "Orientation: columns (weeks as columns) or rows")
	f.StringSliceVar(&opts.techs, "tech", nil, "Show only these technician IDs")
	f.BoolVar(&opts.allTechs, "all-techs", false, "Show every technician and unassigned tasks")
	f.BoolVar(&opts.unassigned, "unassigned", false, "Include unassigned tasks")
	f.StringSliceVar(&opts.statuses, "status", nil, "Show only these maintenance statuses")
	f.BoolVar(&opts.tours, "tours", false, "List the visible tasks day by day")
	cmd.MarkFlagsMutuallyExclusive("tech", "all-techs")

	return cmd
}

// filter starts from the default selection (first technician, every status)
// and applies the flags on top.
func (o calendarOptions) filter(roster []domain.Technician) (calendar.Filter, error) {
	f := calendar.DefaultFilter(roster)
	switch {
	case o.allTechs:
		f = f.ToggleShowAll(roster)
	case len(o.techs) > 0:
		f.Technicians = calendar.SpecificTechnicians(o.techs...)
	}
	if o.unassigned {
		f.IncludeUnassigned = true
	}
	if len(o.statuses) > 0 {
		sts, err := parseStatuses(o.statuses)
		if err != nil {
			return calendar.Filter{}, err
		}
		f.Statuses = calendar.OnlyStatuses(sts...)
	}
	return f, nil
}
