package cli

import (
	"fmt"

	"github.com/alexanderramin/wartung/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTicketCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticket",
		Short: "Service ticket intake",
	}

	cmd.AddCommand(
		newTicketListCmd(app),
		newTicketScheduleCmd(app),
	)

	return cmd
}

func newTicketListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tickets by priority, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			tickets, err := app.Tickets.List(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTickets(tickets, app.now()))
			return nil
		},
	}
}

func newTicketScheduleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule ID",
		Short: "Hand a ticket over to scheduling",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tickets.Schedule(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Ticket %s vorgemerkt\n", args[0])
			return nil
		},
	}
}
