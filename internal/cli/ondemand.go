package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tournevent/shipday/pkg/shipday/order"
	"github.com/tournevent/shipday/pkg/shipday/services"
)

func newOnDemandCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "on-demand",
		Aliases: []string{"ondemand"},
		Short:   "Dispatch orders through third-party delivery providers",
	}

	// byOrderID builds a subcommand taking a single order id.
	byOrderID := func(use, short string, call func(s *services.OnDemandDeliveryService, cmd *cobra.Command, id int) (any, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <order-id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID("orderId", args[0])
				if err != nil {
					return err
				}
				client, err := a.shipday(cmd)
				if err != nil {
					return err
				}
				resp, err := call(client.OnDemand, cmd, id)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), resp)
			},
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "services",
			Short: "List providers",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := a.shipday(cmd)
				if err != nil {
					return err
				}
				resp, err := client.OnDemand.GetServices(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), resp)
			},
		},
		&cobra.Command{
			Use:   "active",
			Short: "List active providers",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := a.shipday(cmd)
				if err != nil {
					return err
				}
				active, err := client.OnDemand.GetActiveServices(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), active)
			},
		},
		byOrderID("estimate", "Estimate fees and times for an order", func(s *services.OnDemandDeliveryService, cmd *cobra.Command, id int) (any, error) {
			return s.Estimate(cmd.Context(), id)
		}),
		byOrderID("cancel", "Cancel the on-demand assignment of an order", func(s *services.OnDemandDeliveryService, cmd *cobra.Command, id int) (any, error) {
			return s.Cancel(cmd.Context(), id)
		}),
		byOrderID("details", "Show the on-demand assignment of an order", func(s *services.OnDemandDeliveryService, cmd *cobra.Command, id int) (any, error) {
			return s.GetDetails(cmd.Context(), id)
		}),
		newAvailabilityCommand(a),
		newAssignCommand(a),
	)
	return cmd
}

func newAvailabilityCommand(a *app) *cobra.Command {
	var pickup, delivery, at string
	cmd := &cobra.Command{
		Use:   "availability",
		Short: "Check which providers can deliver between two addresses",
		Example: `  shipday on-demand availability \
    --pickup '{"street":"Hacker way","city":"California","state":"CA","country":"USA"}' \
    --delivery '{"street":"Jefferson St","city":"California","state":"CA","country":"USA"}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req services.AvailabilityRequest
			var err error
			if req.Pickup, err = parseAddress("pickup", pickup); err != nil {
				return err
			}
			if req.Delivery, err = parseAddress("delivery", delivery); err != nil {
				return err
			}
			if at != "" {
				t, err := parseTime("deliveryTime", at)
				if err != nil {
					return err
				}
				req.DeliveryTime = &t
			}

			client, err := a.shipday(cmd)
			if err != nil {
				return err
			}
			resp, err := client.OnDemand.CheckAvailability(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVar(&pickup, "pickup", "", "pickup address as a JSON object")
	cmd.Flags().StringVar(&delivery, "delivery", "", "delivery address as a JSON object")
	cmd.Flags().StringVar(&at, "time", "", "requested delivery time (RFC 3339)")
	_ = cmd.MarkFlagRequired("pickup")
	_ = cmd.MarkFlagRequired("delivery")
	return cmd
}

func parseAddress(flag, raw string) (*order.Address, error) {
	var fields order.Fields
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("--%s: %w", flag, err)
	}
	return order.AddressFromFields(fields)
}

func newAssignCommand(a *app) *cobra.Command {
	var req services.AssignRequest
	cmd := &cobra.Command{
		Use:   "assign <order-id> <service>",
		Short: "Assign an order to an active provider",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("orderId", args[0])
			if err != nil {
				return err
			}
			req.OrderID = id
			req.ServiceName = args[1]

			client, err := a.shipday(cmd)
			if err != nil {
				return err
			}
			resp, err := client.OnDemand.Assign(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().Float64Var(&req.Tip, "tip", 0, "tip for the driver")
	cmd.Flags().StringVar(&req.EstimateReference, "reference", "", "estimate reference returned by estimate")
	return cmd
}
