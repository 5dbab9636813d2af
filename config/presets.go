package config

import "strings"

const (
	// LocalNetworkName is the in-process simulated network of the build tool
	LocalNetworkName = "hardhat"
	// LocalChainID is the chain id the simulated network reports
	LocalChainID = 80001

	TestnetNetworkName = "mumbai"
	MainnetNetworkName = "mainnet"

	// ProjectIDPlaceholder is replaced by the project id in endpoint urls
	ProjectIDPlaceholder = "{projectId}"
)

// NetworkDefinition is a network before credentials are attached
type NetworkDefinition struct {
	URL     string `mapstructure:"url" json:"url,omitempty" yaml:"url,omitempty"`
	ChainID uint64 `mapstructure:"chainId" json:"chainId,omitempty" yaml:"chainId,omitempty"`
}

var (
	localDefinition = NetworkDefinition{
		ChainID: LocalChainID,
	}
	testnetDefinition = NetworkDefinition{
		URL: "https://polygon-mumbai.infura.io/v3/" + ProjectIDPlaceholder,
	}
	mainnetDefinition = NetworkDefinition{
		URL: "https://polygon-mainnet.infura.io/v3/" + ProjectIDPlaceholder,
	}
)

// DefaultDefinitions returns the built in networks. The mainnet network is only
// included on request.
func DefaultDefinitions(includeMainnet bool) map[string]NetworkDefinition {
	definitions := map[string]NetworkDefinition{
		LocalNetworkName:   localDefinition,
		TestnetNetworkName: testnetDefinition,
	}
	if includeMainnet {
		definitions[MainnetNetworkName] = mainnetDefinition
	}
	return definitions
}

// ExpandURL substitutes the project id into an endpoint url template
func ExpandURL(template, projectID string) string {
	return strings.ReplaceAll(template, ProjectIDPlaceholder, projectID)
}
