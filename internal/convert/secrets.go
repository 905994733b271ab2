package convert

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// SecretLookup resolves an environment variable name to its value.
type SecretLookup interface {
	Lookup(name string) (string, bool)
}

// EnvLookup reads the current process environment.
type EnvLookup struct{}

// Lookup implements SecretLookup with os.LookupEnv.
func (EnvLookup) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapLookup resolves names from a fixed map.
type MapLookup map[string]string

// Lookup implements SecretLookup.
func (m MapLookup) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// ChainLookup tries each lookup in order and returns the first non-empty value.
type ChainLookup []SecretLookup

// Lookup implements SecretLookup.
func (c ChainLookup) Lookup(name string) (string, bool) {
	for _, l := range c {
		if l == nil {
			continue
		}
		if v, ok := l.Lookup(name); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// LoadDotenv reads KEY=value pairs from a dotenv file without touching the
// process environment.
func LoadDotenv(path string) (MapLookup, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return MapLookup(values), nil
}
