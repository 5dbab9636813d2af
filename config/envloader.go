package config

import "os"

//go:generate mockgen -destination mock/loader.go -package mock . ConfigLoader

// ConfigLoader provides an interface for loading config values from a provided
// key
type ConfigLoader interface {
	Get(key string) string
}

// EnvLoader loads keys from os environment
type EnvLoader struct {
}

var _ ConfigLoader = (*EnvLoader)(nil)

// Get retrieves key from environment
func (l *EnvLoader) Get(key string) string {
	return os.Getenv(key)
}

// MapLoader loads keys from a fixed set of values
type MapLoader map[string]string

var _ ConfigLoader = MapLoader(nil)

// Get retrieves key from the map, returning "" when it is not set
func (l MapLoader) Get(key string) string {
	return l[key]
}
