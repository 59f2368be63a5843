package config

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/dnsimple/internal/config"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value. An empty value clears base-url.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  dnsimple config set account 1010\n" +
			"  dnsimple config set sandbox true",
		Args:         cobra.ExactArgs(2),
		RunE:         runSet,
		SilenceUsage: true,
	}

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	spec := config.Lookup(args[0])
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", args[0], strings.Join(config.KeyNames(), ", "))
	}

	var stored string
	err := config.Update(func(cfg *config.Config) error {
		var err error
		stored, err = spec.Set(cfg, args[1])
		return err
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, stored)
	return nil
}
