package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/wartung/internal/cli/formatter"
	"github.com/alexanderramin/wartung/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Confirm or cancel maintenance appointments",
	}

	cmd.AddCommand(
		newTaskStatusCmd(app, "confirm", "Mark an appointment as confirmed by the customer", app.confirmTask),
		newTaskStatusCmd(app, "cancel", "Cancel an appointment", app.cancelTask),
	)

	return cmd
}

func (a *App) confirmTask(ctx context.Context, id string) (*domain.MaintenanceTask, error) {
	return a.Planning.Confirm(ctx, id)
}

func (a *App) cancelTask(ctx context.Context, id string) (*domain.MaintenanceTask, error) {
	return a.Planning.Cancel(ctx, id)
}

func newTaskStatusCmd(
	app *App,
	use, short string,
	action func(context.Context, string) (*domain.MaintenanceTask, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			task, err := action(ctx, args[0])
			if err != nil {
				return err
			}

			var tech *domain.Technician
			if task.Assigned() {
				roster, err := app.Planning.Technicians(ctx)
				if err != nil {
					return err
				}
				tech = findTechnician(roster, task.TechnicianID)
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTask(*task, tech))
			return nil
		},
	}
}

func findTechnician(roster []domain.Technician, id string) *domain.Technician {
	for i := range roster {
		if roster[i].ID == id {
			return &roster[i]
		}
	}
	fallback := domain.FallbackTechnician(id)
	return &fallback
}
