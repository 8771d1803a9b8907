package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tournevent/shipday/pkg/shipday/errs"
	"github.com/tournevent/shipday/pkg/shipday/order"
)

func newOrdersCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage orders",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List active orders",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := a.shipday(cmd)
				if err != nil {
					return err
				}
				resp, err := client.Orders.GetOrders(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), resp)
			},
		},
		&cobra.Command{
			Use:   "get <order-number>",
			Short: "Get orders by order number",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := a.shipday(cmd)
				if err != nil {
					return err
				}
				resp, err := client.Orders.GetOrder(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), resp)
			},
		},
		newOrderCreateCommand(a),
		newOrderEditCommand(a),
		&cobra.Command{
			Use:   "delete <order-id>",
			Short: "Delete an order",
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
				raw, err := client.Orders.DeleteOrder(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), map[string]any{"orderId": id, "status": raw.StatusCode})
			},
		},
		&cobra.Command{
			Use:   "assign <order-id> <carrier-id>",
			Short: "Assign an order to a carrier",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				orderID, err := parseID("orderId", args[0])
				if err != nil {
					return err
				}
				carrierID, err := parseID("carrierId", args[1])
				if err != nil {
					return err
				}
				client, err := a.shipday(cmd)
				if err != nil {
					return err
				}
				resp, err := client.Orders.AssignOrder(cmd.Context(), orderID, carrierID)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), resp)
			},
		},
		newOrderQueryCommand(a),
	)
	return cmd
}

// loadOrder reads an order from a JSON file of wire-format keys.
func loadOrder(cmd *cobra.Command, path string, updateTotal bool) (*order.Order, error) {
	fields, err := readFields(cmd, path)
	if err != nil {
		return nil, err
	}
	o, err := order.OrderFromFields(fields)
	if err != nil {
		return nil, err
	}
	if updateTotal {
		if err := o.UpdateTotalCost(); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func newOrderCreateCommand(a *app) *cobra.Command {
	var (
		file        string
		updateTotal bool
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an order from a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := loadOrder(cmd, file, updateTotal)
			if err != nil {
				return err
			}
			client, err := a.shipday(cmd)
			if err != nil {
				return err
			}
			resp, err := client.Orders.InsertOrder(cmd.Context(), o)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "order JSON file, - for stdin")
	cmd.Flags().BoolVar(&updateTotal, "update-total", false, "recompute total from items and adjustments")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newOrderEditCommand(a *app) *cobra.Command {
	var (
		file        string
		updateTotal bool
	)
	cmd := &cobra.Command{
		Use:   "edit <order-id>",
		Short: "Replace an order from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("orderId", args[0])
			if err != nil {
				return err
			}
			o, err := loadOrder(cmd, file, updateTotal)
			if err != nil {
				return err
			}
			client, err := a.shipday(cmd)
			if err != nil {
				return err
			}
			resp, err := client.Orders.EditOrder(cmd.Context(), id, o)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "order JSON file, - for stdin")
	cmd.Flags().BoolVar(&updateTotal, "update-total", false, "recompute total from items and adjustments")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newOrderQueryCommand(a *app) *cobra.Command {
	var (
		status      string
		start, end  string
		startCursor int
		endCursor   int
	)
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query orders by time range and status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := order.NewOrderQuery(order.QueryParams{})
			if err := q.SetOrderStatus(order.Status(status)); err != nil {
				return err
			}
			if start != "" {
				t, err := parseTime("startTime", start)
				if err != nil {
					return err
				}
				q.SetStartTime(&t)
			}
			if end != "" {
				t, err := parseTime("endTime", end)
				if err != nil {
					return err
				}
				q.SetEndTime(&t)
			}
			if cmd.Flags().Changed("start-cursor") {
				if err := q.SetStartCursor(&startCursor); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("end-cursor") {
				if err := q.SetEndCursor(&endCursor); err != nil {
					return err
				}
			}

			client, err := a.shipday(cmd)
			if err != nil {
				return err
			}
			resp, err := client.Orders.Query(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVar(&status, "status", "", fmt.Sprintf("order status, one of %v", order.Statuses))
	cmd.Flags().StringVar(&start, "start", "", "start time (RFC 3339)")
	cmd.Flags().StringVar(&end, "end", "", "end time (RFC 3339)")
	cmd.Flags().IntVar(&startCursor, "start-cursor", 0, "start cursor")
	cmd.Flags().IntVar(&endCursor, "end-cursor", 0, "end cursor")
	return cmd
}

func parseTime(field, raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errs.TypeMismatch(field, fmt.Sprintf("%s must be an RFC 3339 timestamp", field)).WithCause(err)
	}
	return t, nil
}
