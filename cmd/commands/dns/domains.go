package dns

import (
	"fmt"

	dnsdomain "nathanbeddoewebdev/dnsimple/internal/dns/domain"

	"github.com/spf13/cobra"
)

// DomainsCommand returns the "dns domains" subcommand.
func DomainsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domains",
		Short: "List domains in the account",
		Long: `List all domains in the DNSimple account, across every page.

Examples:
  dnsimple dns domains
  dnsimple dns domains --json`,
		Args: cobra.NoArgs,
		RunE: runDomains,
	}

	cmd.Flags().Bool("json", false, "Print domains as JSON")

	return cmd
}

func runDomains(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	svc, err := newDNSService(cmd)
	if err != nil {
		return err
	}
	domains, err := svc.ListDomains(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing domains: %w", err)
	}

	if asJSON {
		if domains == nil {
			domains = []dnsdomain.Domain{}
		}
		return printJSON(cmd, domains)
	}

	if len(domains) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No domains found.")
		return nil
	}

	printDomainsTable(cmd, domains)
	return nil
}
