package cmd

import (
	"os"

	"nathanbeddoewebdev/dnsimple/cmd/commands/auth"
	cfgcmd "nathanbeddoewebdev/dnsimple/cmd/commands/config"
	"nathanbeddoewebdev/dnsimple/cmd/commands/dns"
	"nathanbeddoewebdev/dnsimple/cmd/commands/whoami"
	dnsproviders "nathanbeddoewebdev/dnsimple/internal/dns/providers"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var debug bool

	var cmd = &cobra.Command{
		Use:   "dnsimple",
		Short: "A CLI for the DNSimple API",
		Long: `dnsimple is a command-line client for the DNSimple API v2. It manages
zone records and lists domains for the account behind your API token.

Quick start:
  dnsimple auth login                                  # Store your API token
  dnsimple whoami                                      # Check the token
  dnsimple dns domains                                 # List domains
  dnsimple dns list example.com                        # List zone records
  dnsimple dns create example.com --type A --name www --content 1.2.3.4`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(debug)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log API requests to stderr")

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(dns.NewCommand())
	cmd.AddCommand(whoami.NewCommand())

	return cmd
}

// setupLogger installs the global logger. Without --debug it stays a no-op.
func setupLogger(debug bool) error {
	if !debug {
		return nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	dnsproviders.RegisterDNSimple()

	var root = rootCmd()
	err := root.Execute()
	_ = zap.L().Sync()
	if err != nil {
		os.Exit(1)
	}
}
