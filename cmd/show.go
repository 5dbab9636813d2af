package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newShowCmd(v *viper.Viper) *cobra.Command {
	var (
		format string
		reveal bool
	)

	cmd := &cobra.Command{
		Use:     "show",
		Short:   "print the network configuration",
		Example: "show --format hardhat --reveal > networks.json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(cmd, v)
			if err != nil {
				return err
			}
			if !reveal {
				cfg = cfg.Redacted()
			}
			return render(cmd.OutOrStdout(), format, cfg)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatJSON, "output format (json, yaml, hardhat)")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "print account keys instead of masking them")

	return cmd
}
