package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import technicians, tasks, tickets and customers from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportDataset(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d technicians, %d tasks, %d tickets, %d customers\n",
				result.TechnicianCount, result.TaskCount, result.TicketCount, result.CustomerCount)
			return nil
		},
	}
}
