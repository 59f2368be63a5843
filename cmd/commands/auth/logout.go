package auth

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/dnsimple/internal/services/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored DNSimple API token",
		Long: `Remove the DNSimple API token from the local keychain.

Example:
  dnsimple auth logout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := newStore().DeleteToken(auth.DefaultProvider)
			switch {
			case errors.Is(err, auth.ErrTokenNotFound):
				fmt.Fprintln(cmd.OutOrStdout(), "No stored token to remove")
				return nil
			case err != nil:
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Removed DNSimple token from the keychain")
			return nil
		},
		SilenceUsage: true,
	}
}
