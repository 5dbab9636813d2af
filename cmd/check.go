package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newCheckCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "load and validate the network configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, v)
			if err != nil {
				return err
			}

			for _, name := range cfg.Names() {
				network := cfg.Networks[name]
				logger.Info("network ok",
					"name", name,
					"chain_id", network.ChainID,
					"remote", network.IsRemote(),
					"accounts", len(network.AccountKeys),
				)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "configuration ok: %d networks, solidity %s\n", len(cfg.Networks), cfg.CompilerVersion)
			return nil
		},
	}
}
