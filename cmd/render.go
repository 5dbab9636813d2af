package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/kava-labs/deploy-networks/config"
)

const (
	formatJSON    = "json"
	formatYAML    = "yaml"
	formatHardhat = "hardhat"
)

type hardhatNetwork struct {
	ChainID  uint64   `json:"chainId,omitempty"`
	URL      string   `json:"url,omitempty"`
	Accounts []string `json:"accounts,omitempty"`
}

// hardhatConfig mirrors the HardhatUserConfig object the build tool loads
type hardhatConfig struct {
	Networks map[string]hardhatNetwork `json:"networks"`
	Solidity string                    `json:"solidity"`
}

func toHardhatConfig(cfg config.Configuration) hardhatConfig {
	networks := make(map[string]hardhatNetwork, len(cfg.Networks))
	for name, network := range cfg.Networks {
		networks[name] = hardhatNetwork{
			ChainID:  network.ChainID,
			URL:      network.EndpointURL,
			Accounts: network.AccountKeys,
		}
	}
	return hardhatConfig{
		Networks: networks,
		Solidity: cfg.CompilerVersion,
	}
}

func render(w io.Writer, format string, cfg config.Configuration) error {
	switch format {
	case formatJSON:
		return writeJSON(w, cfg)
	case formatHardhat:
		return writeJSON(w, toHardhatConfig(cfg))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
