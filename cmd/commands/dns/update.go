package dns

import (
	"fmt"

	dnsdomain "nathanbeddoewebdev/dnsimple/internal/dns/domain"

	"github.com/spf13/cobra"
)

// UpdateCommand returns the "dns update" subcommand.
func UpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <domain> <id>",
		Short: "Update a DNS record",
		Long: `Update an existing zone record by its ID. The record type cannot change.

Examples:
  dnsimple dns update example.com 106926659 --content 5.6.7.8
  dnsimple dns update example.com 106926659 --content 5.6.7.8 --ttl 3600
  dnsimple dns update example.com 106926659 --content 5.6.7.8 --name @`,
		Args: cobra.ExactArgs(2),
		RunE: runUpdate,
	}

	cmd.Flags().String("name", "", "New subdomain name (@ for the apex)")
	cmd.Flags().String("content", "", "New record content [required]")
	cmd.Flags().Int("ttl", 0, "New time-to-live in seconds")
	cmd.Flags().Int("priority", 0, "New record priority")
	cmd.Flags().StringSlice("region", nil, "Replace the record regions (repeatable)")

	cmd.MarkFlagRequired("content")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	domainName := args[0]
	recordID := args[1]
	content, _ := cmd.Flags().GetString("content")
	ttl, _ := cmd.Flags().GetInt("ttl")
	priority, _ := cmd.Flags().GetInt("priority")
	regions, _ := cmd.Flags().GetStringSlice("region")

	// Name: nil means no change.
	var namePtr *string
	if cmd.Flags().Changed("name") {
		v, _ := cmd.Flags().GetString("name")
		namePtr = &v
	}

	svc, err := newDNSService(cmd)
	if err != nil {
		return err
	}
	rec, err := svc.UpdateRecord(cmd.Context(), domainName, recordID, dnsdomain.UpdateRecordOpts{
		Name:     namePtr,
		Content:  content,
		TTL:      ttl,
		Priority: priority,
		Regions:  regions,
	})
	if err != nil {
		return fmt.Errorf("updating record: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated record %s (%s %s -> %s)\n",
		rec.ID, rec.Type, rec.Name, rec.Content)
	return nil
}
