package config

import "strings"

// Inputs holds every external value a Configuration is built from
type Inputs struct {
	PrivateKey     string
	ProjectID      string
	IncludeMainnet bool
	// Overrides add networks or replace built in ones with the same name
	Overrides map[string]NetworkDefinition
}

// Load builds a Configuration from inputs. The private key and project id are
// trimmed of surrounding whitespace; either being blank is a
// MissingCredentialError and no Configuration is produced.
func Load(in Inputs) (Configuration, error) {
	privateKey := strings.TrimSpace(in.PrivateKey)
	if privateKey == "" {
		return Configuration{}, NewMissingCredentialError("private key", nil)
	}

	projectID := strings.TrimSpace(in.ProjectID)
	if projectID == "" {
		return Configuration{}, NewMissingCredentialError(projectIdEnvKey, nil)
	}

	definitions := DefaultDefinitions(in.IncludeMainnet)
	for name, definition := range in.Overrides {
		definitions[name] = definition
	}

	networks := make(map[string]NetworkProfile, len(definitions))
	for name, definition := range definitions {
		network := NetworkProfile{
			Name:    name,
			ChainID: definition.ChainID,
		}
		if definition.URL != "" {
			network.EndpointURL = ExpandURL(definition.URL, projectID)
			network.AccountKeys = []string{privateKey}
		}
		networks[name] = network
	}

	cfg := Configuration{
		Networks:        networks,
		CompilerVersion: CompilerVersion,
	}
	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}

	return cfg, nil
}
