// Package config provides configuration loading and validation for hookdeps.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrEmptyHooksDir      = errors.New("hooks directory must be set")
	ErrEmptyOutputDir     = errors.New("manifest output directory must be set")
	ErrInvalidExtension   = errors.New("extension must start with a dot")
	ErrInvalidHookPrefix  = errors.New("hook prefix must be lowercase letters")
	ErrUnsupportedParser  = errors.New("unsupported parser")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidSidebarType = errors.New("sidebar format must be yaml or json")
)

// Default configuration values.
const (
	DefaultHooksDir       = "hooks"
	DefaultExtension      = ".ts"
	DefaultHookPrefix     = "use"
	DefaultParser         = "regex"
	DefaultOutputDir      = "scaflo/hooks"
	DefaultContentBaseURL = "https://raw.githubusercontent.com/programming-with-ia/vDocs/master/hooks/"
	DefaultPackageName    = "vhooks"
	DefaultLinkPrefix     = "/hooks/"
	DefaultSidebarFormat  = "yaml"
	DefaultLogLevel       = "info"

	envPrefix  = "HOOKDEPS"
	configName = ".hookdeps"
)

var hookPrefixPattern = regexp.MustCompile(`^[a-z]+$`)

// Config holds all configuration for hookdeps.
type Config struct {
	HooksDir    string          `mapstructure:"hooks_dir"`
	Extension   string          `mapstructure:"extension"`
	HookPrefix  string          `mapstructure:"hook_prefix"`
	Parser      string          `mapstructure:"parser"`
	PackageJSON string          `mapstructure:"package_json"`
	Framework   FrameworkConfig `mapstructure:"framework"`
	Manifest    ManifestConfig  `mapstructure:"manifest"`
	Snippet     SnippetConfig   `mapstructure:"snippet"`
	Sidebar     SidebarConfig   `mapstructure:"sidebar"`
	Logging     LoggingConfig   `mapstructure:"logging"`
}

// FrameworkConfig lists the specifiers that belong to the UI framework itself.
type FrameworkConfig struct {
	Packages   []string `mapstructure:"packages"`
	AliasRoots []string `mapstructure:"alias_roots"`
}

// ManifestConfig holds manifest emission settings.
type ManifestConfig struct {
	OutputDir      string `mapstructure:"output_dir"`
	ContentBaseURL string `mapstructure:"content_base_url"`
	Indent         bool   `mapstructure:"indent"`
}

// SnippetConfig holds distributable snippet settings.
type SnippetConfig struct {
	PackageName string `mapstructure:"package_name"`
}

// SidebarConfig holds documentation sidebar settings.
type SidebarConfig struct {
	LinkPrefix string `mapstructure:"link_prefix"`
	Format     string `mapstructure:"format"`
	Title      string `mapstructure:"title"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig loads configuration from file and environment variables.
// With an empty path, .hookdeps.yaml in the working directory is used when present.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
	}

	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("hooks_dir", DefaultHooksDir)
	viperCfg.SetDefault("extension", DefaultExtension)
	viperCfg.SetDefault("hook_prefix", DefaultHookPrefix)
	viperCfg.SetDefault("parser", DefaultParser)
	viperCfg.SetDefault("package_json", "")

	viperCfg.SetDefault("framework.packages", []string{"react", "react-dom"})
	viperCfg.SetDefault("framework.alias_roots", []string{"@/", "~/"})

	viperCfg.SetDefault("manifest.output_dir", DefaultOutputDir)
	viperCfg.SetDefault("manifest.content_base_url", DefaultContentBaseURL)
	viperCfg.SetDefault("manifest.indent", false)

	viperCfg.SetDefault("snippet.package_name", DefaultPackageName)

	viperCfg.SetDefault("sidebar.link_prefix", DefaultLinkPrefix)
	viperCfg.SetDefault("sidebar.format", DefaultSidebarFormat)
	viperCfg.SetDefault("sidebar.title", "")

	viperCfg.SetDefault("logging.level", DefaultLogLevel)
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.HooksDir == "" {
		return ErrEmptyHooksDir
	}

	if config.Manifest.OutputDir == "" {
		return ErrEmptyOutputDir
	}

	if !strings.HasPrefix(config.Extension, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidExtension, config.Extension)
	}

	if !hookPrefixPattern.MatchString(config.HookPrefix) {
		return fmt.Errorf("%w: %q", ErrInvalidHookPrefix, config.HookPrefix)
	}

	switch config.Parser {
	case "regex", "treesitter":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedParser, config.Parser)
	}

	switch strings.ToLower(config.Logging.Level) {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	switch config.Sidebar.Format {
	case "yaml", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSidebarType, config.Sidebar.Format)
	}

	return nil
}
