package dns

import (
	"fmt"

	dnsdomain "nathanbeddoewebdev/dnsimple/internal/dns/domain"

	"github.com/spf13/cobra"
)

// CreateCommand returns the "dns create" subcommand.
func CreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <domain>",
		Short: "Create a DNS record",
		Long: `Create a new record in the zone for the given domain.

Examples:
  dnsimple dns create example.com --type A --name www --content 1.2.3.4
  dnsimple dns create example.com --type MX --content mail.example.com --priority 10
  dnsimple dns create example.com --type TXT --name _dmarc --content "v=DMARC1; p=none"
  dnsimple dns create example.com --type A --content 1.2.3.4 --region SV1 --region IAD`,
		Args: cobra.ExactArgs(1),
		RunE: runCreate,
	}

	cmd.Flags().String("type", "", "Record type (A, AAAA, CNAME, MX, TXT, etc.) [required]")
	cmd.Flags().String("name", "", "Subdomain name (leave empty or use @ for the apex, use * for wildcard)")
	cmd.Flags().String("content", "", "Record content (IP address, hostname, text value, etc.) [required]")
	cmd.Flags().Int("ttl", 0, "Time-to-live in seconds (default: zone default)")
	cmd.Flags().Int("priority", 0, "Record priority (for MX, SRV, etc.)")
	cmd.Flags().StringSlice("region", nil, "Region to serve the record from (repeatable, default: global)")

	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("content")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	domainName := args[0]
	recordType, _ := cmd.Flags().GetString("type")
	name, _ := cmd.Flags().GetString("name")
	content, _ := cmd.Flags().GetString("content")
	ttl, _ := cmd.Flags().GetInt("ttl")
	priority, _ := cmd.Flags().GetInt("priority")
	regions, _ := cmd.Flags().GetStringSlice("region")

	svc, err := newDNSService(cmd)
	if err != nil {
		return err
	}
	rec, err := svc.CreateRecord(cmd.Context(), domainName, dnsdomain.CreateRecordOpts{
		Name:     name,
		Type:     dnsdomain.RecordType(recordType),
		Content:  content,
		TTL:      ttl,
		Priority: priority,
		Regions:  regions,
	})
	if err != nil {
		return fmt.Errorf("creating record: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created record %s (%s %s -> %s)\n",
		rec.ID, rec.Type, rec.Name, rec.Content)
	return nil
}
