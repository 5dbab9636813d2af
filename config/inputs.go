package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	privateKeyEnvKey       = "PRIVATE_KEY"
	infuraPrivateKeyEnvKey = "INFURA_PRIVATE_KEY"
	projectIdEnvKey        = "INFURA_PROJECT_ID"
	includeMainnetEnvKey   = "INCLUDE_MAINNET"
	secretFileEnvKey       = "SECRET_FILE"
)

// LoadDotEnv loads the given env files (.env by default) into the process
// environment. Variables that are already set are left untouched.
func LoadDotEnv(logger log.Logger, filenames ...string) {
	// Ignore error from godotenv, continue if there isn't an .env file and
	// check if required env vars already exist
	if err := godotenv.Load(filenames...); err != nil {
		logger.Info(".env not found, attempting to proceed with available env variables")
	}
}

// SelectKeySource returns a file source when SECRET_FILE is set and an
// environment source otherwise
func SelectKeySource(loader ConfigLoader) KeySource {
	if path := strings.TrimSpace(loader.Get(secretFileEnvKey)); path != "" {
		return NewFileKeySource(path)
	}
	return NewEnvKeySource(loader)
}

// ReadInputs collects the Inputs for Load from a ConfigLoader and a KeySource
func ReadInputs(loader ConfigLoader, source KeySource, logger log.Logger) (Inputs, error) {
	privateKey, err := source.PrivateKey()
	if err != nil {
		return Inputs{}, err
	}
	logger.Debug("private key loaded", "source", source.Name())

	projectID := loader.Get(projectIdEnvKey)
	if strings.TrimSpace(projectID) == "" {
		return Inputs{}, NewMissingCredentialError(projectIdEnvKey, nil)
	}

	includeMainnet := false
	if raw := strings.TrimSpace(loader.Get(includeMainnetEnvKey)); raw != "" {
		includeMainnet, err = strconv.ParseBool(raw)
		if err != nil {
			return Inputs{}, fmt.Errorf("%s must be a boolean: %w", includeMainnetEnvKey, err)
		}
	}

	return Inputs{
		PrivateKey:     privateKey,
		ProjectID:      projectID,
		IncludeMainnet: includeMainnet,
	}, nil
}
