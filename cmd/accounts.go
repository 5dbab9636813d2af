package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kava-labs/deploy-networks/signer"
)

func newAccountsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "print the deployer address of each remote network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(cmd, v)
			if err != nil {
				return err
			}

			accounts, err := signer.Accounts(cfg)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NETWORK\tADDRESS")
			for _, account := range accounts {
				fmt.Fprintf(w, "%s\t%s\n", account.Network, account.Address.Hex())
			}
			return w.Flush()
		},
	}
}
