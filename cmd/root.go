package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ba",
		Short:         "Bluesky Accounts CLI (ba): manage sessions for multiple accounts",
		Long:          "ba (Bluesky Accounts CLI) keeps sessions for several Bluesky accounts in one place: log in with app passwords, switch the active account, and keep stored tokens fresh across refreshes.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newAccountCmd(app),
	)

	return rootCmd
}
