package cli

import (
	"github.com/spf13/cobra"
	"github.com/tournevent/shipday/pkg/shipday/carrier"
)

func newCarriersCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "carriers",
		Short: "Manage carriers",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List carriers",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := a.shipday(cmd)
				if err != nil {
					return err
				}
				resp, err := client.Carriers.GetCarriers(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), resp)
			},
		},
		newCarrierAddCommand(a),
		&cobra.Command{
			Use:   "delete <carrier-id>",
			Short: "Delete a carrier",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID("carrierId", args[0])
				if err != nil {
					return err
				}
				client, err := a.shipday(cmd)
				if err != nil {
					return err
				}
				raw, err := client.Carriers.DeleteCarrier(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), map[string]any{"carrierId": id, "status": raw.StatusCode})
			},
		},
	)
	return cmd
}

func newCarrierAddCommand(a *app) *cobra.Command {
	var p carrier.Params
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a carrier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := carrier.NewRequest(p)
			if err := req.Verify(); err != nil {
				return err
			}
			client, err := a.shipday(cmd)
			if err != nil {
				return err
			}
			resp, err := client.Carriers.AddCarrier(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVar(&p.Name, "name", "", "carrier name")
	cmd.Flags().StringVar(&p.Email, "email", "", "carrier email")
	cmd.Flags().StringVar(&p.PhoneNumber, "phone", "", "carrier phone number")
	return cmd
}
