package config

import (
	"fmt"
	"strings"

	"github.com/guyvdb/srplist/fault"
	"github.com/guyvdb/srplist/pager"
	"github.com/spf13/viper"
)

const EnvPrefix = "SRPLIST"

// Config holds the settings shared by the srplist commands.
type Config struct {
	PageSize int          `mapstructure:"page-size"`
	Locale   string       `mapstructure:"locale"`
	Sort     string       `mapstructure:"sort"`
	DB       string       `mapstructure:"db"`
	BasePath string       `mapstructure:"base-path"`
	LogLevel string       `mapstructure:"log-level"`
	NoColor  bool         `mapstructure:"no-color"`
	Window   pager.Window `mapstructure:"window"`
}

// SetDefaults registers every key with its default so environment
// variables are picked up for all of them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("page-size", 20)
	v.SetDefault("locale", "en")
	v.SetDefault("sort", "")
	v.SetDefault("db", "")
	v.SetDefault("base-path", "/requests/")
	v.SetDefault("log-level", "info")
	v.SetDefault("no-color", false)
	v.SetDefault("window.left-edge", pager.DefaultWindow.LeftEdge)
	v.SetDefault("window.left-current", pager.DefaultWindow.LeftCurrent)
	v.SetDefault("window.right-current", pager.DefaultWindow.RightCurrent)
	v.SetDefault("window.right-edge", pager.DefaultWindow.RightEdge)
}

// Load resolves the configuration from, in increasing priority, the
// defaults, the config file (if any), SRPLIST_* environment variables and
// whatever flags were bound to v.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("%w: %d", fault.ErrInvalidPageSize, cfg.PageSize)
	}
	return &cfg, nil
}
