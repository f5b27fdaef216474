package cli

import (
	"fmt"

	"github.com/alexanderramin/wartung/internal/calendar"
	"github.com/alexanderramin/wartung/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// wartungHuhTheme matches huh forms to the formatter palette.
func wartungHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func weekOptions(weeks []calendar.WeekOption) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(weeks))
	for i, w := range weeks {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s  (%s)", w.Label, formatter.GermanDate(w.Monday)), i))
	}
	return opts
}

// tourRangeForm asks for the first and last week. The end choices start at
// the selected first week.
func tourRangeForm(weeks []calendar.WeekOption, from, to *int) *huh.Form {
	all := weekOptions(weeks)
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Von").
				Options(all...).
				Value(from),
			huh.NewSelect[int]().
				Title("Bis").
				OptionsFunc(func() []huh.Option[int] {
					if *from < 0 || *from >= len(all) {
						return all
					}
					return all[*from:]
				}, from).
				Value(to),
		),
	).WithTheme(wartungHuhTheme())
}

func newTourCmd(app *App) *cobra.Command {
	var from, to int
	var list bool

	cmd := &cobra.Command{
		Use:   "tour",
		Short: "Count appointments per status over a range of planning weeks",
		Long: fmt.Sprintf("Count appointments per status from the Monday of --from to the Sunday of --to.\n"+
			"Weeks are indexes 0-%d counted from the current week.", calendar.PlanningHorizon-1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weeks := app.Tours.Weeks(app.now())
			out := cmd.OutOrStdout()
			if list {
				fmt.Fprint(out, formatter.FormatWeekOptions(weeks))
				return nil
			}

			flagsGiven := cmd.Flags().Changed("from") || cmd.Flags().Changed("to")
			if !flagsGiven && app.interactive() {
				if err := tourRangeForm(weeks, &from, &to).Run(); err != nil {
					return err
				}
			} else if !cmd.Flags().Changed("to") {
				to = from
			}

			if from < 0 || from >= len(weeks) {
				return fmt.Errorf("week index %d out of range 0-%d", from, len(weeks)-1)
			}
			if to >= len(weeks) {
				to = len(weeks) - 1
			}
			from, to = calendar.ClampRange(from, to)

			stats, err := app.Tours.Stats(cmd.Context(), weeks[from], weeks[to])
			if err != nil {
				return err
			}

			fmt.Fprintln(out, formatter.FormatTourStats(weeks[from], weeks[to], stats))
			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "First week index (0 = current week)")
	cmd.Flags().IntVar(&to, "to", 0, "Last week index (defaults to --from)")
	cmd.Flags().BoolVar(&list, "weeks", false, "List the selectable weeks")

	return cmd
}
