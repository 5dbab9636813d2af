package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/kava-labs/deploy-networks/config"
)

const (
	flagEnvFile    = "env-file"
	flagSecretFile = "secret-file"
	flagNetworks   = "networks"
	flagMainnet    = "mainnet"
	flagLogLevel   = "log-level"

	envPrefix = "DEPLOY_NETWORKS"
)

// NewRootCmd builds the command tree. Every persistent flag can also be set
// through a DEPLOY_NETWORKS_ prefixed environment variable.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "deploy-networks",
		Short: "network and account configuration for smart contract deployments",
		Long: `deploy-networks builds the network configuration used by the contract
build tool: the local simulated network, remote endpoints templated with the
INFURA_PROJECT_ID and the deployer key from PRIVATE_KEY or a secrets file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringSlice(flagEnvFile, nil, "env files to load (default .env)")
	flags.String(flagSecretFile, "", "read the private key from this file instead of the environment")
	flags.String(flagNetworks, "", "yaml, toml or json file with extra network definitions")
	flags.Bool(flagMainnet, false, "include the mainnet network")
	flags.String(flagLogLevel, "info", "log level (debug, info, error, none)")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(
		newShowCmd(v),
		newCheckCmd(v),
		newAccountsCmd(v),
	)

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level string) (log.Logger, error) {
	allowed, err := log.AllowLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewFilter(log.NewTMLogger(log.NewSyncWriter(w)), allowed), nil
}

// loadConfiguration resolves every input source and builds the Configuration
func loadConfiguration(v *viper.Viper, logger log.Logger) (config.Configuration, error) {
	config.LoadDotEnv(logger, v.GetStringSlice(flagEnvFile)...)

	loader := &config.EnvLoader{}

	var source config.KeySource
	if path := v.GetString(flagSecretFile); path != "" {
		source = config.NewFileKeySource(path)
	} else {
		source = config.SelectKeySource(loader)
	}

	inputs, err := config.ReadInputs(loader, source, logger)
	if err != nil {
		return config.Configuration{}, err
	}

	if v.GetBool(flagMainnet) {
		inputs.IncludeMainnet = true
	}

	if path := v.GetString(flagNetworks); path != "" {
		overrides, err := config.LoadNetworksFile(path)
		if err != nil {
			return config.Configuration{}, err
		}
		logger.Debug("loaded network definitions", "path", path, "count", len(overrides))
		inputs.Overrides = overrides
	}

	return config.Load(inputs)
}

// setup creates the logger for cmd and loads the configuration
func setup(cmd *cobra.Command, v *viper.Viper) (config.Configuration, log.Logger, error) {
	logger, err := newLogger(cmd.ErrOrStderr(), v.GetString(flagLogLevel))
	if err != nil {
		return config.Configuration{}, nil, err
	}

	cfg, err := loadConfiguration(v, logger)
	if err != nil {
		return config.Configuration{}, nil, err
	}

	return cfg, logger, nil
}
