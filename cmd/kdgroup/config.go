package main

import (
	"fmt"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/kdgroup/group"
)

// envPrefix scopes environment overrides, e.g. KDGROUP_ORDER=3.
const envPrefix = "KDGROUP"

// Config is the resolved CLI configuration: defaults, then the optional
// YAML config file, then KDGROUP_* environment variables, then flags.
type Config struct {
	Order    int    `mapstructure:"order"`
	Memoize  bool   `mapstructure:"memoize"`
	Workers  int    `mapstructure:"workers"`
	LogLevel string `mapstructure:"log_level"`
	Rotate   int    `mapstructure:"rotate"`
	Format   string `mapstructure:"format"`
	Kind     string `mapstructure:"kind"`
	Output   string `mapstructure:"output"`
}

// setDefaults registers every key so env lookups and Unmarshal see it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("order", 2)
	v.SetDefault("memoize", true)
	v.SetDefault("workers", 1)
	v.SetDefault("log_level", "info")
	v.SetDefault("rotate", -1)
	v.SetDefault("format", formatText)
	v.SetDefault("kind", kindGroup)
	v.SetDefault("output", "")
}

// newViper returns a viper instance with defaults and env binding.
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// bindFlags maps flag names to config keys for the flags cmd defines.
func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) error {
	for flag, key := range keys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			f = cmd.PersistentFlags().Lookup(flag)
		}
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", flag, err)
		}
	}

	return nil
}

// loadConfig reads the optional config file and unmarshals the result.
func loadConfig(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		log.Debugf("loaded config from %s", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// applyLogLevel sets every go-log logger to cfg.LogLevel, falling back to info.
func applyLogLevel(cfg Config) {
	level, err := logging.LevelFromString(cfg.LogLevel)
	if err != nil {
		level = logging.LevelInfo
	}
	logging.SetAllLoggers(level)
}

// deriveOptions translates the configuration into group options.
// Loops are skipped at order 0, where the unit group has only two elements.
func (cfg Config) deriveOptions() []group.Option {
	return []group.Option{
		group.WithMemoization(cfg.Memoize),
		group.WithWorkers(cfg.Workers),
		group.WithLoops(cfg.Order > 0),
	}
}
