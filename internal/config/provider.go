// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"os"
	"path/filepath"
)

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
	// WorkDir is searched for argkit.cue. Empty means the current directory.
	WorkDir string
	// LookupEnv reads environment variables. Nil means os.Getenv. Viper's
	// own ARGKIT_* overrides always read the process environment.
	LookupEnv func(string) string
}

// Provider loads configuration from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

type fileProvider struct{}

// NewProvider creates a configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	return loadWithOptions(ctx, opts)
}

func (o LoadOptions) lookupEnv(key string) string {
	if o.LookupEnv != nil {
		return o.LookupEnv(key)
	}
	return os.Getenv(key)
}

func (o LoadOptions) localPath() string {
	return filepath.Join(o.WorkDir, ConfigFileName+"."+ConfigFileExt)
}
