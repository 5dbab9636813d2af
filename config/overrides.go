package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadNetworksFile reads network definitions from the "networks" table of a
// yaml, toml or json file. Network names are case-insensitive and come back
// lower cased.
func LoadNetworksFile(path string) (map[string]NetworkDefinition, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read networks file: %w", err)
	}

	var definitions map[string]NetworkDefinition
	if err := v.UnmarshalKey("networks", &definitions); err != nil {
		return nil, fmt.Errorf("failed to decode networks file: %w", err)
	}
	if len(definitions) == 0 {
		return nil, fmt.Errorf("%w: no networks defined in %s", ErrInvalidNetwork, path)
	}

	for name, definition := range definitions {
		if definition.URL == "" && definition.ChainID == 0 {
			return nil, fmt.Errorf("%w: %s needs a url or a chainId", ErrInvalidNetwork, name)
		}
	}

	return definitions, nil
}
