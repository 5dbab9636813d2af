package config

import (
	"fmt"
	"sort"
)

// CompilerVersion is the solidity version every deployment is compiled with
const CompilerVersion = "0.8.4"

// NetworkProfile describes one deployable target
type NetworkProfile struct {
	Name        string   `json:"name" yaml:"name"`
	ChainID     uint64   `json:"chainId,omitempty" yaml:"chainId,omitempty"`
	EndpointURL string   `json:"url,omitempty" yaml:"url,omitempty"`
	AccountKeys []string `json:"accounts,omitempty" yaml:"accounts,omitempty"`
}

// IsRemote reports whether the network is reached through an endpoint url
func (n NetworkProfile) IsRemote() bool {
	return n.EndpointURL != ""
}

// Validate checks a single profile is usable by the build tool
func (n NetworkProfile) Validate() error {
	if n.Name == "" {
		return fmt.Errorf("%w: empty network name", ErrInvalidNetwork)
	}
	if n.IsRemote() {
		if len(n.AccountKeys) == 0 {
			return fmt.Errorf("%w: %s has an endpoint but no accounts", ErrInvalidNetwork, n.Name)
		}
		for i, key := range n.AccountKeys {
			if key == "" {
				return fmt.Errorf("%w: %s account %d is empty", ErrInvalidNetwork, n.Name, i)
			}
		}
		return nil
	}
	if n.ChainID == 0 {
		return fmt.Errorf("%w: %s has neither an endpoint nor a chain id", ErrInvalidNetwork, n.Name)
	}
	return nil
}

// Configuration is the root record handed to the build tool
type Configuration struct {
	Networks        map[string]NetworkProfile `json:"networks" yaml:"networks"`
	CompilerVersion string                    `json:"compilerVersion" yaml:"compilerVersion"`
}

// Names returns the network names in sorted order
func (c Configuration) Names() []string {
	names := make([]string, 0, len(c.Networks))
	for name := range c.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks every network and that each map key matches its profile name
func (c Configuration) Validate() error {
	if len(c.Networks) == 0 {
		return fmt.Errorf("%w: no networks configured", ErrInvalidNetwork)
	}
	for _, name := range c.Names() {
		network := c.Networks[name]
		if network.Name != name {
			return fmt.Errorf("%w: network %q is registered as %q", ErrInvalidNetwork, network.Name, name)
		}
		if err := network.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Redacted returns a deep copy with every account key masked
func (c Configuration) Redacted() Configuration {
	networks := make(map[string]NetworkProfile, len(c.Networks))
	for name, network := range c.Networks {
		if len(network.AccountKeys) > 0 {
			masked := make([]string, len(network.AccountKeys))
			for i, key := range network.AccountKeys {
				masked[i] = redactKey(key)
			}
			network.AccountKeys = masked
		}
		networks[name] = network
	}
	return Configuration{
		Networks:        networks,
		CompilerVersion: c.CompilerVersion,
	}
}

// redactKey keeps the last four characters so operators can tell keys apart
func redactKey(key string) string {
	const visible = 4
	if len(key) <= visible*2 {
		return "****"
	}
	return "****" + key[len(key)-visible:]
}
