package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kava-labs/deploy-networks/config/mock"
)

func TestEnvKeySourcePrecedence(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mock.NewMockConfigLoader(ctrl)

	gomock.InOrder(
		loader.EXPECT().Get("PRIVATE_KEY").Return("  "),
		loader.EXPECT().Get("INFURA_PRIVATE_KEY").Return("0xdeadbeef\n"),
	)

	key, err := NewEnvKeySource(loader).PrivateKey()
	require.NoError(t, err)
	// trimming is left to Load
	assert.Equal(t, "0xdeadbeef\n", key)
}

func TestEnvKeySourcePrefersPrivateKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mock.NewMockConfigLoader(ctrl)

	loader.EXPECT().Get("PRIVATE_KEY").Return("0x01").Times(1)

	key, err := NewEnvKeySource(loader).PrivateKey()
	require.NoError(t, err)
	assert.Equal(t, "0x01", key)
}

func TestEnvKeySourceMissing(t *testing.T) {
	source := NewEnvKeySource(MapLoader{})

	_, err := source.PrivateKey()

	var missing *MissingCredentialError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "PRIVATE_KEY or INFURA_PRIVATE_KEY", missing.Source)
	assert.EqualError(t, err, "PRIVATE_KEY or INFURA_PRIVATE_KEY not set")
}

func TestFileKeySource(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".secret")
	require.NoError(t, os.WriteFile(path, []byte("0xdeadbeef\n"), 0600))

	key, err := NewFileKeySource(path).PrivateKey()
	require.NoError(t, err)
	assert.Equal(t, "0xdeadbeef\n", key)
}

func TestFileKeySourceMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := NewFileKeySource(path).PrivateKey()

	var missing *MissingCredentialError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, path, missing.Source)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFileKeySourceBlankFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".secret")
	require.NoError(t, os.WriteFile(path, []byte(" \n"), 0600))

	_, err := NewFileKeySource(path).PrivateKey()

	var missing *MissingCredentialError
	assert.True(t, errors.As(err, &missing))
}

func TestFileKeySourceDefaultPath(t *testing.T) {
	source := NewFileKeySource("")
	assert.Equal(t, DefaultSecretFile, source.Path)
	assert.Equal(t, DefaultSecretFile, source.Name())
}
