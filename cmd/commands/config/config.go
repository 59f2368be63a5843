package config

import (
	"nathanbeddoewebdev/dnsimple/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage dnsimple CLI configuration",
		Long: "View and modify persistent dnsimple CLI settings.\n\n" +
			"Configuration is stored at ~/.config/dnsimple-cli/config.json.\n" +
			"DNSIMPLE_ACCOUNT, DNSIMPLE_SANDBOX and DNSIMPLE_BASE_URL override it.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
