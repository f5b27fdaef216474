package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/wartung/internal/cli/formatter"
	"github.com/alexanderramin/wartung/internal/domain"
	"github.com/alexanderramin/wartung/internal/masterdata"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// customerFetcher runs one customer query. Implementations never fail; a
// failed fetch yields an empty page.
type customerFetcher func(ctx context.Context, q domain.CustomerQuery) domain.CustomerPage

// customerFetcherFor returns the store-backed query, or with local set the
// in-memory query over all customers loaded once.
func customerFetcherFor(ctx context.Context, app *App, local bool) (customerFetcher, error) {
	if !local {
		return app.Customers.Query, nil
	}
	all, err := app.Customers.All(ctx)
	if err != nil {
		return nil, err
	}
	return func(_ context.Context, q domain.CustomerQuery) domain.CustomerPage {
		return masterdata.Query(all, q)
	}, nil
}

func newCustomerCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Customer master data",
	}

	cmd.AddCommand(
		newCustomerListCmd(app),
		newCustomerCountCmd(app),
		newCustomerBrowseCmd(app),
	)

	return cmd
}

func newCustomerListCmd(app *App) *cobra.Command {
	var (
		search   string
		locality string
		sortBy   = sortFieldValue(domain.SortSurname)
		desc     bool
		page     int
		local    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			fetch, err := customerFetcherFor(ctx, app, local)
			if err != nil {
				return err
			}

			q := domain.CustomerQuery{
				Search:    search,
				Locality:  locality,
				SortField: domain.SortField(sortBy),
				Direction: domain.SortAsc,
				Page:      page,
				PageSize:  app.pageSize(),
			}
			if desc {
				q.Direction = domain.SortDesc
			}
			q = q.Normalized()

			result := fetch(ctx, q)
			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatCustomerPage(result, q))
			fmt.Fprintln(out, formatter.FormatLocalities(result.Localities))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&search, "search", "s", "", "Case-insensitive search over name, company, number, address and email")
	f.StringVar(&locality, "ort", domain.AllLocalities, "Only customers in this locality (\"all\" for every locality)")
	f.Var(&sortBy, "sort", "Sort field: owner_number, surname, first_name, city, postal_code, email, phone")
	f.BoolVar(&desc, "desc", false, "Sort descending")
	f.IntVarP(&page, "page", "p", 1, "Page number")
	f.BoolVar(&local, "local", false, "Load every customer and query in memory")

	return cmd
}

func newCustomerCountCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Count all customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Customers.Count(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", formatter.Bold("Kunden:"), n)
			return nil
		},
	}
}

func newCustomerBrowseCmd(app *App) *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Search customers interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("customer browse needs an interactive terminal; use customer list")
			}
			fetch, err := customerFetcherFor(cmd.Context(), app, local)
			if err != nil {
				return err
			}

			browser := newCustomerBrowser(fetch, app.pageSize(), app.SearchDebounce)
			_, err = tea.NewProgram(browser, tea.WithAltScreen()).Run()
			browser.stop()
			return err
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "Load every customer and query in memory")

	return cmd
}
