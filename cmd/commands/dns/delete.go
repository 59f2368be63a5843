package dns

import (
	"fmt"

	"github.com/spf13/cobra"
)

// DeleteCommand returns the "dns delete" subcommand.
func DeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <domain> <id>",
		Short: "Delete a DNS record",
		Long: `Delete a zone record by its ID. System records (SOA, apex NS) are
managed by DNSimple and cannot be deleted.

Example:
  dnsimple dns delete example.com 106926659`,
		Args: cobra.ExactArgs(2),
		RunE: runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	domainName := args[0]
	recordID := args[1]

	svc, err := newDNSService(cmd)
	if err != nil {
		return err
	}

	rec, err := svc.GetRecord(cmd.Context(), domainName, recordID)
	if err != nil {
		return fmt.Errorf("looking up record %s: %w", recordID, err)
	}
	if rec.System {
		return fmt.Errorf("record %s is a system record and cannot be deleted", rec.ID)
	}

	if err := svc.DeleteRecord(cmd.Context(), domainName, rec.ID); err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted record %s (%s %s -> %s)\n",
		rec.ID, rec.Type, rec.Name, rec.Content)
	return nil
}
