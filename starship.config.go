package starship

import (
	"errors"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Configuration defaults
const (
	DefaultConfigName = "starship"
	DefaultConfigType = "yaml"
	EnvPrefix         = "STARSHIP"
)

// Default module formats, fitted to the format mini-language. The region
// sub-group of the aws format elides on its own when no region resolves, so
// the prompt never shows empty parentheses.
const (
	DefaultFormatAWS  = "on [$symbol$profile[ \\($region\\)]($style)]($style) "
	DefaultFormatPerl = "via [$symbol$version]($style) "
	DefaultFormatPony = "via [$symbol$version]($style) "
)

// ModuleConfig is the configuration shared by all modules
type ModuleConfig struct {
	Format           string   `mapstructure:"format" yaml:"format"`
	Symbol           string   `mapstructure:"symbol" yaml:"symbol"`
	Style            string   `mapstructure:"style" yaml:"style"`
	VersionFormat    string   `mapstructure:"version_format" yaml:"version_format"`
	Disabled         bool     `mapstructure:"disabled" yaml:"disabled"`
	DetectExtensions []string `mapstructure:"detect_extensions" yaml:"detect_extensions"`
	DetectFiles      []string `mapstructure:"detect_files" yaml:"detect_files"`
	DetectFolders    []string `mapstructure:"detect_folders" yaml:"detect_folders"`
}

// AWSConfig configures the aws module
type AWSConfig struct {
	ModuleConfig  `mapstructure:",squash" yaml:",inline"`
	RegionAliases map[string]string `mapstructure:"region_aliases" yaml:"region_aliases"`
}

// PerlConfig configures the perl module
type PerlConfig struct {
	ModuleConfig `mapstructure:",squash" yaml:",inline"`
}

// PonyConfig configures the pony module
type PonyConfig struct {
	ModuleConfig `mapstructure:",squash" yaml:",inline"`
}

// Config is the full prompt configuration
type Config struct {
	ModuleOrder []string   `mapstructure:"module_order" yaml:"module_order"`
	AWS         AWSConfig  `mapstructure:"aws" yaml:"aws"`
	Perl        PerlConfig `mapstructure:"perl" yaml:"perl"`
	Pony        PonyConfig `mapstructure:"pony" yaml:"pony"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		ModuleOrder: []string{ModuleNameAWS, ModuleNamePerl, ModuleNamePony},
		AWS: AWSConfig{
			ModuleConfig: ModuleConfig{
				Format: DefaultFormatAWS,
				Symbol: "☁️  ",
				Style:  "bold yellow",
			},
		},
		Perl: PerlConfig{
			ModuleConfig: ModuleConfig{
				Format:           DefaultFormatPerl,
				Symbol:           "🐪 ",
				Style:            "bold 149",
				VersionFormat:    DefaultVersionFormat,
				DetectExtensions: []string{"pl", "pm", "pod"},
				DetectFiles: []string{
					"Makefile.PL", "Build.PL", "cpanfile", "cpanfile.snapshot",
					"META.json", "META.yml", ".perl-version",
				},
			},
		},
		Pony: PonyConfig{
			ModuleConfig: ModuleConfig{
				Format:           DefaultFormatPony,
				Symbol:           "🐎 ",
				Style:            "bold yellow",
				VersionFormat:    DefaultVersionFormat,
				DetectExtensions: []string{"pony"},
			},
		},
	}
}

// LoadConfig loads the prompt configuration, layering an optional preset and
// the user's config file over the defaults. A missing config file is not an
// error; a malformed one is.
func LoadConfig(path string, preset string, logger *zap.Logger) (*Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	v := viper.New()
	v.SetConfigType(DefaultConfigType)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	setConfigDefaults(v)

	if preset != "" {
		overlay, err := presetOverlay(preset)
		if err != nil {
			return nil, err
		}
		if err := v.MergeConfigMap(overlay); err != nil {
			return nil, NewConfigError(err)
		}
		logger.Debug(LogMsgPresetApplied, zap.String(LogFieldPreset, preset))
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, NewConfigError(err)
		}
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath("$HOME/.config")
		v.AddConfigPath(".")
		if err := v.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, NewConfigError(err)
			}
			logger.Debug(LogMsgConfigLoadFailed)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, NewConfigError(err)
	}

	logger.Debug(LogMsgConfigLoaded, zap.String(LogFieldPath, v.ConfigFileUsed()))
	return cfg, nil
}

// setConfigDefaults registers the built-in defaults with viper
func setConfigDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("module_order", defaults.ModuleOrder)

	v.SetDefault("aws.format", defaults.AWS.Format)
	v.SetDefault("aws.symbol", defaults.AWS.Symbol)
	v.SetDefault("aws.style", defaults.AWS.Style)

	v.SetDefault("perl.format", defaults.Perl.Format)
	v.SetDefault("perl.symbol", defaults.Perl.Symbol)
	v.SetDefault("perl.style", defaults.Perl.Style)
	v.SetDefault("perl.version_format", defaults.Perl.VersionFormat)
	v.SetDefault("perl.detect_extensions", defaults.Perl.DetectExtensions)
	v.SetDefault("perl.detect_files", defaults.Perl.DetectFiles)

	v.SetDefault("pony.format", defaults.Pony.Format)
	v.SetDefault("pony.symbol", defaults.Pony.Symbol)
	v.SetDefault("pony.style", defaults.Pony.Style)
	v.SetDefault("pony.version_format", defaults.Pony.VersionFormat)
	v.SetDefault("pony.detect_extensions", defaults.Pony.DetectExtensions)
}
