// Package config defines the data structures related to configuration and
// includes functions for loading it from a file, the environment and flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/status-plot/pkg/constants"
	"github.com/iwvelando/status-plot/pkg/scatter"
	"github.com/iwvelando/status-plot/pkg/validation"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for status-plot.
type Configuration struct {
	Render  RenderConfig  `yaml:"render,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// RenderConfig holds chart appearance options, in pixels.
type RenderConfig struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
	Margin int `yaml:"margin,omitempty"`
	Radius int `yaml:"radius,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds stats output configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, yaml
}

// flagKeys maps configuration keys to the command line flags that override them.
var flagKeys = map[string]string{
	"render.width":       "width",
	"render.height":      "height",
	"render.margin":      "margin",
	"render.radius":      "radius",
	"logging.level":      "log-level",
	"logging.format":     "log-format",
	"logging.outputFile": "log-file",
	"output.format":      "format",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("render.width", constants.DefaultWidth)
	v.SetDefault("render.height", constants.DefaultHeight)
	v.SetDefault("render.margin", constants.DefaultMargin)
	v.SetDefault("render.radius", constants.DefaultRadius)
	v.SetDefault("logging.level", constants.DefaultLogLevel)
	v.SetDefault("logging.format", constants.DefaultLogFormat)
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
}

// LoadConfiguration layers defaults, the YAML file at configPath (skipped when
// empty), STATUS_PLOT_* environment variables and any changed flags in flags,
// in increasing order of precedence.
func LoadConfiguration(configPath string, flags *pflag.FlagSet) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("unable to bind flag %s, %s", name, err)
			}
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ResolveConfigPath returns explicit when set. Otherwise it returns the
// default config file if one exists in the working directory, or "".
func ResolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if _, err := os.Stat(constants.DefaultConfigFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to stat %s: %w", constants.DefaultConfigFile, err)
	}
	return constants.DefaultConfigFile, nil
}

// Scatter converts the render options into the chart geometry configuration.
func (r RenderConfig) Scatter() scatter.RenderConfig {
	return scatter.RenderConfig{
		Width:  r.Width,
		Height: r.Height,
		Margin: r.Margin,
		Radius: r.Radius,
	}
}

// ValidateConfiguration checks the render settings and returns warnings for
// settings that are legal but probably unintended. output.format is only
// read by the stats command, which validates it itself.
func (c *Configuration) ValidateConfiguration() ([]string, error) {
	warnings, err := validation.ValidateRenderConfig(c.Render.Scatter())
	if err != nil {
		return nil, fmt.Errorf("invalid render configuration: %w", err)
	}
	return warnings, nil
}
