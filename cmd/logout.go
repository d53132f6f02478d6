package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout <did-or-handle>",
		Short: "Remove a stored account and drop its connection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := resolveAccount(app, args[0])
			if err != nil {
				return err
			}

			if err := app.agents.Logout(account.DID); err != nil {
				return fmt.Errorf("log out %s: %w", account.DID, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged out %s (%s)\n", account.Session.Handle, account.DID)
			return nil
		},
	}
}
