package cmd

import (
	"fmt"

	accountsrender "github.com/bnema/bsky-accounts-cli/internal/adapters/render/accounts"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage stored accounts",
	}

	cmd.AddCommand(
		newAccountListCmd(app),
		newAccountSwitchCmd(app),
	)

	return cmd
}

func newAccountListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			active, err := app.store.Active()
			if err != nil {
				return fmt.Errorf("resolve active account: %w", err)
			}

			output, err := app.accountsRenderer(app.store.Accounts(), accountsrender.RenderOptions{
				Now:    app.now(),
				Active: active,
			})
			if err != nil {
				return fmt.Errorf("render account list: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
}

func newAccountSwitchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "switch <did-or-handle>",
		Short: "Make an account the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := resolveAccount(app, args[0])
			if err != nil {
				return err
			}

			if err := app.agents.SetActive(account.DID); err != nil {
				return fmt.Errorf("switch active account: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Active account is now %s (%s)\n", account.Session.Handle, account.DID)
			return nil
		},
	}
}
