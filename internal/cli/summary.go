package cli

import (
	"reflect"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Summary is the output of the summary command.
type Summary struct {
	Orders         int      `json:"orders"`
	Carriers       int      `json:"carriers"`
	ActiveServices []string `json:"activeServices"`
}

func newSummaryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Count orders and carriers and list active providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.shipday(cmd)
			if err != nil {
				return err
			}

			var s Summary
			g, ctx := errgroup.WithContext(cmd.Context())

			g.Go(func() error {
				resp, err := client.Orders.GetOrders(ctx)
				if err != nil {
					return err
				}
				s.Orders = count(resp)
				return nil
			})
			g.Go(func() error {
				resp, err := client.Carriers.GetCarriers(ctx)
				if err != nil {
					return err
				}
				s.Carriers = count(resp)
				return nil
			})
			g.Go(func() error {
				active, err := client.OnDemand.GetActiveServices(ctx)
				if err != nil {
					return err
				}
				s.ActiveServices = active
				return nil
			})

			if err := g.Wait(); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), s)
		},
	}
}

// count returns the length of a list response, 0 for anything else.
func count(resp any) int {
	v := reflect.ValueOf(resp)
	if v.Kind() == reflect.Slice {
		return v.Len()
	}
	return 0
}
