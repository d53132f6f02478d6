package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/bsky-accounts-cli/internal/domain"
	"github.com/bnema/bsky-accounts-cli/internal/multiagent"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errInteractivePasswordRequired = errors.New("no password given and stdin is not a terminal; pass --password or pipe one in")

func newLoginCmd(app *app) *cobra.Command {
	var (
		service    string
		identifier string
		password   string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to a Bluesky account and store its session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolvedPassword, err := resolvePassword(password)
			if err != nil {
				return err
			}

			var did domain.DID
			err = runLoginSpinner(cmd.Context(), cmd.ErrOrStderr(), func() error {
				var loginErr error
				did, loginErr = app.agents.Login(cmd.Context(), multiagent.LoginOptions{
					Service:    service,
					Identifier: identifier,
					Password:   resolvedPassword,
				})
				return loginErr
			})
			if err != nil {
				return err
			}

			account, err := app.store.Get(did)
			if err != nil {
				return fmt.Errorf("read stored account: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", account.Session.Handle, did)
			return nil
		},
	}

	cmd.Flags().StringVar(&service, "service", app.defaultService, "PDS service URL")
	cmd.Flags().StringVar(&identifier, "identifier", "", "Handle or email to log in with")
	cmd.Flags().StringVar(&password, "password", "", "Account or app password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("identifier")

	return cmd
}

func resolvePassword(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errInteractivePasswordRequired
	}

	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	password := strings.TrimSpace(string(raw))
	if password == "" {
		return "", errors.New("empty password")
	}

	return password, nil
}
