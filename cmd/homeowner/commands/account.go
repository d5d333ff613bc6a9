package commands

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/homeowner/internal/cli"
	"github.com/dmitrijs2005/homeowner/internal/common"
	"github.com/spf13/cobra"
)

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Create, list and delete accounts",
	}
	cmd.AddCommand(accountCreateCmd(), accountListCmd(), accountDeleteCmd(), accountClearCmd())
	return cmd
}

// passwordArg returns --password if set, otherwise prompts for it.
func passwordArg(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("password") {
		return cmd.Flags().GetString("password")
	}
	pw, err := cli.GetPassword(bufio.NewReader(cmd.InOrStdin()), cli.TerminalFD(cmd.InOrStdin()), cmd.OutOrStdout())
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

func userError(err error) error {
	return errors.New(cli.Message(err))
}

func accountCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <username>",
		Short: "Create an account; the first account of an empty store is the admin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := passwordArg(cmd)
			if err != nil {
				return err
			}

			acc, err := appCtx.session.CreateAccount(cmd.Context(), args[0], password)
			if err != nil {
				return userError(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Created", acc.String())
			return nil
		},
	}
	cmd.Flags().String("password", "", "password (prompted for when omitted)")
	return cmd
}

func accountListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts in creation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, acc := range appCtx.session.ListAccounts() {
				fmt.Fprintf(out, "%2d. %s\t%s\t%s\n", i+1, acc.Username, acc.Role(), acc.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func accountDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <username>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acc, ok := appCtx.store.FindByUsername(args[0])
			if !ok {
				return userError(common.ErrNotFound)
			}
			if err := appCtx.session.DeleteAccount(cmd.Context(), acc); err != nil {
				return userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted", acc.Username)
			return nil
		},
	}
}

func accountClearCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to delete all accounts without --yes")
			}
			if err := appCtx.session.ClearAllAccounts(cmd.Context()); err != nil {
				return userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All accounts removed")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm")
	return cmd
}
