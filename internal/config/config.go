// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/viper"

	"github.com/invowk/argkit/internal/issue"
)

const (
	// AppName is the application name.
	AppName = "argkit"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "argkit"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes every environment override, e.g. ARGKIT_VERBOSE.
	EnvPrefix = "ARGKIT"
	// ConfigPathEnv names the environment variable holding an explicit
	// config file path.
	ConfigPathEnv = EnvPrefix + "_CONFIG"
)

//go:embed config_schema.cue
var configSchema string

// Config holds the CLI settings.
type Config struct {
	Program       string `mapstructure:"program"`
	AllowUnparsed bool   `mapstructure:"allow_unparsed"`
	Verbose       bool   `mapstructure:"verbose"`
	Greeting      string `mapstructure:"greeting"`
	DefaultArgs   string `mapstructure:"default_args"`

	// Source is the config file the values were read from, empty when only
	// defaults and the environment applied.
	Source string `mapstructure:"-"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Greeting: "Hello",
	}
}

// DefaultArgv splits DefaultArgs into tokens the way a POSIX shell would.
func (c *Config) DefaultArgv() ([]string, error) {
	if strings.TrimSpace(c.DefaultArgs) == "" {
		return nil, nil
	}
	argv, err := shlex.Split(c.DefaultArgs)
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("split default_args").
			WithResource(c.DefaultArgs).
			WithSuggestion("Check that every quote is closed").
			WithIssue(issue.DefaultArgsInvalidId).
			Wrap(err).
			BuildError()
	}
	return argv, nil
}

// loadWithOptions performs option-driven config loading.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("program", defaults.Program)
	v.SetDefault("allow_unparsed", defaults.AllowUnparsed)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("greeting", defaults.Greeting)
	v.SetDefault("default_args", defaults.DefaultArgs)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := opts.ConfigFilePath
	explicit := path != ""
	if !explicit {
		path = opts.lookupEnv(ConfigPathEnv)
		explicit = path != ""
	}
	if !explicit {
		path = opts.localPath()
	}

	resolved := ""
	switch {
	case fileExists(path):
		if err := loadCUEIntoViper(v, path); err != nil {
			return nil, loadError(path, err,
				"Check that the file contains valid CUE syntax",
				"Verify the configuration values match the expected schema",
			)
		}
		resolved = path
	case explicit:
		return nil, loadError(path, fmt.Errorf("config file not found: %s", path),
			"Verify the file path is correct",
			"Unset "+ConfigPathEnv+" to use "+ConfigFileName+"."+ConfigFileExt+" from the working directory",
		)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Source = resolved
	return &cfg, nil
}

func loadError(path string, err error, suggestions ...string) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestions(suggestions...).
		WithSuggestion("Use 'argkit config show' to see the effective configuration").
		WithIssue(issue.ConfigLoadFailedId).
		Wrap(err).
		BuildError()
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// GenerateCUE renders cfg as a CUE document accepted by the schema.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// argkit configuration\n\n")
	if cfg.Program != "" {
		fmt.Fprintf(&sb, "program: %q\n", cfg.Program)
	}
	fmt.Fprintf(&sb, "allow_unparsed: %v\n", cfg.AllowUnparsed)
	fmt.Fprintf(&sb, "verbose: %v\n", cfg.Verbose)
	fmt.Fprintf(&sb, "greeting: %q\n", cfg.Greeting)
	if cfg.DefaultArgs != "" {
		fmt.Fprintf(&sb, "default_args: %q\n", cfg.DefaultArgs)
	}
	return sb.String()
}
