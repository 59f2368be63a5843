// Package whoami implements the "whoami" command.
package whoami

import (
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/dnsimple/dnsimple"
	"nathanbeddoewebdev/dnsimple/internal/services"
	"nathanbeddoewebdev/dnsimple/internal/services/auth"

	"github.com/spf13/cobra"
)

// newStore is swapped in tests.
var newStore = auth.DefaultStore

// NewCommand returns the "whoami" command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the account or user behind the current token",
		Long: `Show the account or user the current DNSimple token authenticates as,
and the account DNS commands act on.

Example:
  dnsimple whoami`,
		Args:         cobra.NoArgs,
		RunE:         runWhoami,
		SilenceUsage: true,
	}
}

func runWhoami(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	session, err := services.Open(ctx, newStore())
	if err != nil {
		return err
	}

	data, err := dnsimple.Whoami(ctx, session.Client)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	if data.User != nil {
		fmt.Fprintf(w, "User:\t%d (%s)\n", data.User.ID, data.User.Email)
	}
	if data.Account != nil {
		fmt.Fprintf(w, "Account:\t%d (%s)\n", data.Account.ID, data.Account.Email)
		if data.Account.PlanIdentifier != "" {
			fmt.Fprintf(w, "Plan:\t%s\n", data.Account.PlanIdentifier)
		}
	}

	accountID, err := session.AccountID(ctx)
	if err != nil {
		fmt.Fprintf(w, "Active account:\t(none: %v)\n", err)
	} else {
		fmt.Fprintf(w, "Active account:\t%s\n", accountID)
	}
	fmt.Fprintf(w, "API:\t%s\n", session.Client.BaseURL)

	return w.Flush()
}
