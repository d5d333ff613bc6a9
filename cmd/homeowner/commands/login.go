package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Check a username and password; exits non-zero when they do not match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := passwordArg(cmd)
			if err != nil {
				return err
			}

			acc, err := appCtx.session.Login(cmd.Context(), args[0], password)
			if err != nil {
				return userError(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Logged in as", acc.String())
			return nil
		},
	}
	cmd.Flags().String("password", "", "password (prompted for when omitted)")
	return cmd
}
