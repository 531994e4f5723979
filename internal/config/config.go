// Package config resolves runtime settings from defaults, an optional
// site.yaml, SITE_* environment variables and command flags, in that order
// of increasing precedence.
package config

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jrgriffin/site/internal/core"
)

const (
	envPrefix      = "SITE"
	configName     = "site"
	configType     = "yaml"
	defaultAddr    = ":8080"
	defaultOutDir  = "dist"
	defaultCDN     = "https://cdn.tailwindcss.com"
	defaultLogKind = "text"
)

const (
	KeyAddr        = "addr"
	KeyDev         = "dev"
	KeyOutDir      = "out_dir"
	KeyClean       = "clean"
	KeyContentFile = "content_file"
	KeyPublicDir   = "public_dir"
	KeyDebug       = "debug"
	KeyLogFormat   = "log_format"
	KeyLogFile     = "log_file"
	KeyStylesheets = "stylesheets"
	KeyScripts     = "scripts"
)

// flagNames maps config keys to the command flags that may override them.
var flagNames = map[string]string{
	KeyAddr:        "addr",
	KeyDev:         "dev",
	KeyOutDir:      "out",
	KeyClean:       "clean",
	KeyContentFile: "content",
	KeyDebug:       "debug",
	KeyLogFormat:   "log-format",
}

type Config struct {
	Addr        string   `mapstructure:"addr"`
	Dev         bool     `mapstructure:"dev"`
	OutDir      string   `mapstructure:"out_dir"`
	Clean       bool     `mapstructure:"clean"`
	ContentFile string   `mapstructure:"content_file"`
	PublicDir   string   `mapstructure:"public_dir"`
	Debug       bool     `mapstructure:"debug"`
	LogFormat   string   `mapstructure:"log_format"`
	LogFile     string   `mapstructure:"log_file"`
	Stylesheets []string `mapstructure:"stylesheets"`
	Scripts     []string `mapstructure:"scripts"`

	// ConfigFile is the file that was actually read, if any.
	ConfigFile string `mapstructure:"-"`
}

func (c Config) Mode() core.Mode {
	if c.Dev {
		return core.ModeDev
	}
	return core.ModeProd
}

type LoadOptions struct {
	// File is an explicit config path; it must exist when set.
	File string
	// SearchPaths are scanned for site.yaml when File is empty.
	SearchPaths []string
	Flags       *pflag.FlagSet
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	v.SetDefault(KeyAddr, defaultAddr)
	v.SetDefault(KeyDev, false)
	v.SetDefault(KeyOutDir, defaultOutDir)
	v.SetDefault(KeyClean, false)
	v.SetDefault(KeyContentFile, "")
	v.SetDefault(KeyPublicDir, "")
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogFormat, defaultLogKind)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyStylesheets, []string{})
	v.SetDefault(KeyScripts, []string{defaultCDN})

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		paths := opts.SearchPaths
		if len(paths) == 0 {
			paths = []string{"."}
		}
		for _, p := range paths {
			v.AddConfigPath(p)
		}
		v.SetConfigName(configName)
		v.SetConfigType(configType)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for key, name := range flagNames {
			f := opts.Flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, iofs.ErrNotExist)
		switch {
		case missing && opts.File == "":
		case missing:
			return Config{}, &core.OpError{Op: "config.load", Kind: core.KindNotFound, Path: opts.File, Err: err}
		default:
			return Config{}, &core.OpError{Op: "config.load", Kind: core.KindInvalidConfig, Path: v.ConfigFileUsed(), Err: err}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, &core.OpError{Op: "config.decode", Kind: core.KindInvalidConfig, Err: err}
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return &core.OpError{Op: "config.validate", Kind: core.KindInvalidConfig, Path: c.ConfigFile, Err: fmt.Errorf(format, args...)}
	}

	if strings.TrimSpace(c.Addr) == "" {
		return invalid("addr cannot be empty")
	}
	if strings.TrimSpace(c.OutDir) == "" {
		return invalid("out_dir cannot be empty")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return invalid("log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}
