package auth

import (
	"fmt"
	"os"
	"strings"

	"nathanbeddoewebdev/dnsimple/internal/services/auth"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a DNSimple API token",
		Long: `Store a DNSimple API token in the local keychain.

Account tokens and user tokens both work. Create one under
Account > Automation in the DNSimple web interface.

Examples:
  dnsimple auth login
  dnsimple auth login --token dnsimpletest_a_xxxxxxxx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := cmd.Flags().GetString("token")
			if err != nil {
				return err
			}

			token = strings.TrimSpace(token)
			if token == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Enter API token: ")
				bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(cmd.OutOrStdout())
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}
				token = strings.TrimSpace(string(bytes))
			}

			if token == "" {
				return fmt.Errorf("token cannot be empty")
			}

			if err := newStore().SetToken(auth.DefaultProvider, token); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Saved DNSimple token to the keychain")
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("token", "", "API token (optional, overrides prompt)")

	return cmd
}
