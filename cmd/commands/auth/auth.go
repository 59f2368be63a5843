package auth

import (
	"nathanbeddoewebdev/dnsimple/internal/services/auth"

	"github.com/spf13/cobra"
)

// newStore returns the token store used by the auth commands. Tests swap it
// for an in-memory store.
var newStore = auth.DefaultStore

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage DNSimple API credentials",
		Long: `Manage DNSimple API credentials.

Use this command group to store, inspect, and remove the API token kept in
the local keychain. The DNSIMPLE_TOKEN environment variable takes precedence
over the stored token.`,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(StatusCommand())
	cmd.AddCommand(LogoutCommand())

	return cmd
}
