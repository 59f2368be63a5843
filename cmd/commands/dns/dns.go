package dns

import (
	dnsproviders "nathanbeddoewebdev/dnsimple/internal/dns/providers"
	"nathanbeddoewebdev/dnsimple/internal/dns/services"
	"nathanbeddoewebdev/dnsimple/internal/services/auth"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewCommand returns the top-level "dns" Cobra command with all subcommands attached.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dns",
		Short: "Manage DNS records in hosted zones",
		Long:  `Create, list, update, and delete zone records. List domains in your account.`,

		SilenceUsage: true,
	}

	cmd.AddCommand(DomainsCommand())
	cmd.AddCommand(ListCommand())
	cmd.AddCommand(CreateCommand())
	cmd.AddCommand(UpdateCommand())
	cmd.AddCommand(DeleteCommand())

	cmd.PersistentFlags().String("provider", dnsproviders.DNSimpleName, "DNS provider to use")

	return cmd
}

func newDNSService(cmd *cobra.Command) (*services.Service, error) {
	providerName := cmd.Flag("provider").Value.String()
	provider, err := dnsproviders.Get(cmd.Context(), providerName, auth.DefaultStore())
	if err != nil {
		return nil, err
	}
	return services.New(provider, services.WithLogger(zap.L())), nil
}
