package auth

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/dnsimple/dnsimple"
	"nathanbeddoewebdev/dnsimple/internal/services"
	"nathanbeddoewebdev/dnsimple/internal/services/auth"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show authentication status",
		Long: `Show where the DNSimple token comes from and, with --verify, check
it against the API.

Examples:
  dnsimple auth status
  dnsimple auth status --verify`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verify, _ := cmd.Flags().GetBool("verify")
			store := newStore()

			_, source, err := auth.ResolveToken(store, auth.DefaultProvider)
			switch {
			case errors.Is(err, auth.ErrTokenNotFound):
				fmt.Fprintf(cmd.OutOrStdout(), "%s: not logged in\n", auth.DefaultProvider)
				return nil
			case err != nil:
				fmt.Fprintf(cmd.OutOrStdout(), "%s: error (%v)\n", auth.DefaultProvider, err)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: logged in (%s)\n", auth.DefaultProvider, source)
			if !verify {
				return nil
			}

			session, err := services.Open(cmd.Context(), store)
			if err != nil {
				return err
			}
			whoami, err := dnsimple.Whoami(cmd.Context(), session.Client)
			if err != nil {
				return fmt.Errorf("token check failed: %w", err)
			}

			switch {
			case whoami.Account != nil:
				fmt.Fprintf(cmd.OutOrStdout(), "token valid for account %d (%s)\n", whoami.Account.ID, whoami.Account.Email)
			case whoami.User != nil:
				fmt.Fprintf(cmd.OutOrStdout(), "token valid for user %d (%s)\n", whoami.User.ID, whoami.User.Email)
			default:
				fmt.Fprintln(cmd.OutOrStdout(), "token valid")
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().Bool("verify", false, "Check the token against the API")

	return cmd
}
