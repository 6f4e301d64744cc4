// Package config loads transpiler configuration from mahalo.yml with
// environment variable overrides.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mahalo/mahalo-transpiler/internal/transpiler/lineage"
	"github.com/mahalo/mahalo-transpiler/internal/transpiler/rewrite"
)

// Config is the transpiler configuration.
type Config struct {
	Hook        HookConfig     `mapstructure:"hook"`
	Sentinels   SentinelConfig `mapstructure:"sentinels"`
	Cache       CacheConfig    `mapstructure:"cache"`
	Diagnostics bool           `mapstructure:"diagnostics"`
}

// HookConfig names the runtime hook import.
type HookConfig struct {
	Name   string `mapstructure:"name"`
	Module string `mapstructure:"module"`
}

// SentinelConfig overrides the framework base type identities.
type SentinelConfig struct {
	Component SentinelEntry `mapstructure:"component"`
	Behavior  SentinelEntry `mapstructure:"behavior"`
	Route     SentinelEntry `mapstructure:"route"`
}

// SentinelEntry is one sentinel's name and declaring module path.
type SentinelEntry struct {
	Name       string `mapstructure:"name"`
	ModulePath string `mapstructure:"module_path"`
}

// CacheConfig bounds the parsed-unit cache.
type CacheConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// Load reads mahalo.yml (or mahalo.yaml) from the working directory,
// falling back to defaults when absent.
func Load() (*Config, error) {
	v := viper.New()

	defaults := rewrite.DefaultOptions()
	v.SetDefault("hook.name", defaults.HookName)
	v.SetDefault("hook.module", defaults.HookModule)
	v.SetDefault("sentinels.component.name", defaults.Sentinels.Component.Name)
	v.SetDefault("sentinels.component.module_path", defaults.Sentinels.Component.ModulePath)
	v.SetDefault("sentinels.behavior.name", defaults.Sentinels.Behavior.Name)
	v.SetDefault("sentinels.behavior.module_path", defaults.Sentinels.Behavior.ModulePath)
	v.SetDefault("sentinels.route.name", defaults.Sentinels.Route.Name)
	v.SetDefault("sentinels.route.module_path", defaults.Sentinels.Route.ModulePath)
	v.SetDefault("cache.capacity", 8)
	v.SetDefault("diagnostics", true)

	v.SetConfigName("mahalo")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &config, nil
}

// PipelineOptions converts the configuration into pipeline options.
func (c *Config) PipelineOptions() rewrite.Options {
	return rewrite.Options{
		HookName:         c.Hook.Name,
		HookModule:       c.Hook.Module,
		CheckDiagnostics: c.Diagnostics,
		Sentinels: rewrite.Sentinels{
			Component: lineage.Sentinel{Name: c.Sentinels.Component.Name, ModulePath: c.Sentinels.Component.ModulePath},
			Behavior:  lineage.Sentinel{Name: c.Sentinels.Behavior.Name, ModulePath: c.Sentinels.Behavior.ModulePath},
			Route:     lineage.Sentinel{Name: c.Sentinels.Route.Name, ModulePath: c.Sentinels.Route.ModulePath},
		},
	}
}
