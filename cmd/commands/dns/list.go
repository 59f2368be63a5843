package dns

import (
	"fmt"
	"strings"

	dnsdomain "nathanbeddoewebdev/dnsimple/internal/dns/domain"
	"nathanbeddoewebdev/dnsimple/internal/dns/services"

	"github.com/spf13/cobra"
)

// ListCommand returns the "dns list" subcommand.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <domain> [domain...]",
		Short: "List DNS records for one or more domains",
		Long: `List all zone records for the given domains. Several zones are
fetched concurrently.

Examples:
  dnsimple dns list example.com
  dnsimple dns list example.com --type A
  dnsimple dns list example.com example.org --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runList,
	}

	cmd.Flags().String("type", "", "Filter records by type (A, AAAA, CNAME, MX, TXT, etc.)")
	cmd.Flags().Bool("json", false, "Print records as JSON")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	typeFilter, _ := cmd.Flags().GetString("type")
	asJSON, _ := cmd.Flags().GetBool("json")

	svc, err := newDNSService(cmd)
	if err != nil {
		return err
	}

	records, err := svc.ListRecordsMany(cmd.Context(), args)
	if err != nil {
		return fmt.Errorf("listing records: %w", err)
	}

	if typeFilter != "" {
		filtered := records[:0]
		for _, r := range records {
			if strings.EqualFold(string(r.Type), typeFilter) {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}
	if len(args) > 1 {
		services.SortRecords(records)
	}

	if asJSON {
		if records == nil {
			records = []dnsdomain.Record{}
		}
		return printJSON(cmd, records)
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No records found.")
		return nil
	}

	printRecordsTable(cmd, records)
	return nil
}
