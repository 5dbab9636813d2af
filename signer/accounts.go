package signer

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/kava-labs/deploy-networks/config"
)

// Account is the deployer account configured for a network
type Account struct {
	Network string         `json:"network" yaml:"network"`
	Address common.Address `json:"address" yaml:"address"`
}

// ParsePrivateKey parses a hex encoded secp256k1 key with or without a 0x prefix
func ParsePrivateKey(key string) (*ecdsa.PrivateKey, error) {
	key = strings.TrimSpace(key)
	key = strings.TrimPrefix(strings.TrimPrefix(key, "0x"), "0X")
	return crypto.HexToECDSA(key)
}

// DeployerAddress returns the address that signs with key
func DeployerAddress(key string) (common.Address, error) {
	privKey, err := ParsePrivateKey(key)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(privKey.PublicKey), nil
}

// Accounts lists the deployer account of every remote network in name order.
// Errors name the network but never include the key.
func Accounts(cfg config.Configuration) ([]Account, error) {
	var accounts []Account
	for _, name := range cfg.Names() {
		network := cfg.Networks[name]
		for i, key := range network.AccountKeys {
			address, err := DeployerAddress(key)
			if err != nil {
				return nil, fmt.Errorf("invalid private key for network %s account %d: %w", name, i, err)
			}
			accounts = append(accounts, Account{
				Network: name,
				Address: address,
			})
		}
	}
	return accounts, nil
}
