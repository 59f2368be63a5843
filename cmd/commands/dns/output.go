package dns

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	dnsdomain "nathanbeddoewebdev/dnsimple/internal/dns/domain"

	"github.com/spf13/cobra"
)

// printJSON encodes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printDomainsTable(cmd *cobra.Command, domains []dnsdomain.Domain) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "DOMAIN\tSTATE\tTLD\tAUTO-RENEW\tEXPIRES")
	fmt.Fprintln(w, "------\t-----\t---\t----------\t-------")

	for _, d := range domains {
		expires := d.ExpiresAt
		if expires == "" {
			expires = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n",
			d.Name,
			d.State,
			d.TLD,
			d.AutoRenew,
			expires,
		)
	}

	w.Flush()
}

func printRecordsTable(cmd *cobra.Command, records []dnsdomain.Record) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tCONTENT\tTTL\tPRIORITY\tREGIONS")
	fmt.Fprintln(w, "--\t----\t----\t-------\t---\t--------\t-------")

	for _, r := range records {
		prio := ""
		if r.Priority > 0 {
			prio = fmt.Sprintf("%d", r.Priority)
		}
		name := r.Name
		if r.System {
			name += " (system)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			r.ID,
			name,
			string(r.Type),
			r.Content,
			r.TTL,
			prio,
			strings.Join(r.Regions, ","),
		)
	}

	w.Flush()
}
