package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSecretFile is the secrets file read when no path is configured
const DefaultSecretFile = ".secret"

// KeySource provides the deployer private key
type KeySource interface {
	PrivateKey() (string, error)
	// Name describes where the key comes from without revealing it
	Name() string
}

// EnvKeySource reads the private key from the first non-blank of Keys
type EnvKeySource struct {
	Loader ConfigLoader
	Keys   []string
}

var _ KeySource = (*EnvKeySource)(nil)

// NewEnvKeySource returns a source checking PRIVATE_KEY then INFURA_PRIVATE_KEY
func NewEnvKeySource(loader ConfigLoader) *EnvKeySource {
	return &EnvKeySource{
		Loader: loader,
		Keys:   []string{privateKeyEnvKey, infuraPrivateKeyEnvKey},
	}
}

// PrivateKey returns the raw value of the first key that is set
func (s *EnvKeySource) PrivateKey() (string, error) {
	for _, key := range s.Keys {
		value := s.Loader.Get(key)
		if strings.TrimSpace(value) != "" {
			return value, nil
		}
	}
	return "", NewMissingCredentialError(s.Name(), nil)
}

func (s *EnvKeySource) Name() string {
	return strings.Join(s.Keys, " or ")
}

// FileKeySource reads the private key from a plain text secrets file
type FileKeySource struct {
	Path string
}

var _ KeySource = (*FileKeySource)(nil)

// NewFileKeySource returns a source for path, or DefaultSecretFile when path is empty
func NewFileKeySource(path string) *FileKeySource {
	if path == "" {
		path = DefaultSecretFile
	}
	return &FileKeySource{Path: path}
}

// PrivateKey returns the file contents. A missing, unreadable or blank file is
// a MissingCredentialError.
func (s *FileKeySource) PrivateKey() (string, error) {
	fp, err := filepath.Abs(s.Path)
	if err != nil {
		return "", err
	}

	contents, err := os.ReadFile(filepath.Clean(fp))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", NewMissingCredentialError(s.Path, err)
		}
		return "", NewMissingCredentialError(s.Path, fmt.Errorf("failed to read secrets file: %w", err))
	}

	if strings.TrimSpace(string(contents)) == "" {
		return "", NewMissingCredentialError(s.Path, nil)
	}

	return string(contents), nil
}

func (s *FileKeySource) Name() string {
	return s.Path
}
