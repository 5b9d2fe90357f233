package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// ConfigPaths defines the search locations for config files.
const (
	// GlobalConfigDir is the XDG config directory name
	GlobalConfigDir = "gadgets"
	// GlobalConfigFile is the global config file name
	GlobalConfigFile = "config.yaml"
	// ProjectConfigDir is the project-local config directory
	ProjectConfigDir = ".gadgets"
	// ProjectConfigFile is the project-local config file name
	ProjectConfigFile = "config.yaml"
)

// ExampleSeparator splits advisor.examples when it arrives as a single string
// (environment variables). Examples routinely contain commas.
const ExampleSeparator = ";"

// layer is one optional YAML file in the precedence chain.
type layer struct {
	path     string
	required bool
}

// LoadConfig loads configuration from files and viper settings.
// Precedence (later overrides earlier):
//  1. Default() values
//  2. ~/.config/gadgets/config.yaml (global)
//  3. .gadgets/config.yaml (project)
//  4. Explicit --config file
//  5. Environment variables (GADGETS_*)
//
// Only the explicit file has to exist. The result is not validated: callers
// apply their own overrides first and then call Validate.
func LoadConfig(v *viper.Viper) (*Config, error) {
	cfg := Default()

	var defaults map[string]interface{}
	if err := mapstructure.Decode(cfg, &defaults); err != nil {
		return nil, err
	}
	if err := v.MergeConfigMap(defaults); err != nil {
		return nil, err
	}

	for _, l := range configLayers(v) {
		if err := l.mergeInto(v); err != nil {
			return nil, fmt.Errorf("%s: %w", l.path, err)
		}
	}

	if err := v.Unmarshal(cfg, viperDecodeHook()); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeInto reads the layer's YAML through a scratch viper, so a malformed
// file leaves v untouched, then merges the settings into v.
func (l layer) mergeInto(v *viper.Viper) error {
	file, err := os.Open(l.path)
	if err != nil {
		if !l.required && os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer func() { _ = file.Close() }()

	scratch := viper.New()
	scratch.SetConfigType("yaml")
	if err := scratch.ReadConfig(file); err != nil {
		return err
	}
	return v.MergeConfigMap(scratch.AllSettings())
}

// configLayers lists the files to merge, lowest precedence first.
func configLayers(v *viper.Viper) []layer {
	var layers []layer
	if p := globalConfigPath(); p != "" {
		layers = append(layers, layer{path: p})
	}
	if p := projectConfigPath(); p != "" {
		layers = append(layers, layer{path: p})
	}
	// --config flag or GADGETS_CONFIG
	if p := v.GetString("config"); p != "" {
		layers = append(layers, layer{path: p, required: true})
	}
	return layers
}

// globalConfigPath returns the global config file path if it exists.
// XDG_CONFIG_HOME wins over ~/.config.
func globalConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return existing(filepath.Join(base, GlobalConfigDir, GlobalConfigFile))
}

// projectConfigPath returns the project config file path if it exists.
func projectConfigPath() string {
	return existing(filepath.Join(ProjectConfigDir, ProjectConfigFile))
}

func existing(path string) string {
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// viperDecodeHook returns the decoder config with the example splitting hook.
func viperDecodeHook() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(ExampleSeparator),
	))
}
