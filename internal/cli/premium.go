package cli

import (
	"github.com/spf13/cobra"
)

func newPremiumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "premium",
		Short: "Premium membership commands",
	}

	cmd.AddCommand(newPremiumRequestCmd())
	cmd.AddCommand(newPremiumMineCmd())
	cmd.AddCommand(newPremiumListCmd())
	cmd.AddCommand(newPremiumProcessCmd())
	cmd.AddCommand(newPremiumDeleteCmd())

	return cmd
}

func newPremiumRequestCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Request premium membership",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{}
			if message != "" {
				req["message"] = message
			}

			var result PremiumRequest
			if _, err := client.Post("/api/premium/request", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&message, "message", "", "Optional note to the admins")

	return cmd
}

func newPremiumMineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "Show your premium requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []PremiumRequest
			if _, err := client.Get("/api/premium/my-requests", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPremiumListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all premium requests (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/premium/requests"
			if status != "" {
				path += "?status=" + status
			}

			var result []PremiumRequest
			if _, err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter: pending, approved, rejected")

	return cmd
}

func newPremiumProcessCmd() *cobra.Command {
	var status, response string

	cmd := &cobra.Command{
		Use:   "process <id>",
		Short: "Approve or reject a premium request (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"status": status}
			if response != "" {
				req["adminResponse"] = response
			}

			var result PremiumRequest
			if _, err := client.Put("/api/premium/requests/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Decision: approved or rejected (required)")
	cmd.Flags().StringVar(&response, "response", "", "Note to the requester")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func newPremiumDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a premium request (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := client.Delete("/api/premium/requests/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Premium request deleted")
			return nil
		},
	}
}
