// Package config holds vedit's runtime options. Values come from command-line
// flags, VEDIT_* environment variables and built-in defaults, in that order.
// No configuration file is read or written.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ionut-t/vedit/core"
)

// EnvPrefix is prepended to every environment variable, e.g. VEDIT_DEBUG.
const EnvPrefix = "VEDIT"

// Config holds all runtime options.
type Config struct {
	Debug            bool          `mapstructure:"debug"`
	LogFile          string        `mapstructure:"log_file"`
	QuitTimes        int           `mapstructure:"quit_times"`         // Refused quits on a dirty buffer before one is honoured
	ResizeResetsQuit bool          `mapstructure:"resize_resets_quit"` // Whether a resize disarms a pending quit
	MessageTimeout   time.Duration `mapstructure:"message_timeout"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Debug:            false,
		LogFile:          "vedit-debug.log",
		QuitTimes:        1,
		ResizeResetsQuit: false,
		MessageTimeout:   5 * time.Second,
	}
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"debug":              "debug",
	"log-file":           "log_file",
	"quit-times":         "quit_times",
	"resize-resets-quit": "resize_resets_quit",
	"message-timeout":    "message_timeout",
}

// RegisterFlags adds one flag per option to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	defaults := Defaults()
	flags.BoolP("debug", "d", defaults.Debug, "enable debug logging")
	flags.String("log-file", defaults.LogFile, "debug log file path")
	flags.Int("quit-times", defaults.QuitTimes, "quit requests refused on unsaved changes before quitting")
	flags.Bool("resize-resets-quit", defaults.ResizeResetsQuit, "disarm a pending quit confirmation on terminal resize")
	flags.Duration("message-timeout", defaults.MessageTimeout, "how long status messages stay visible")
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	defaults := Defaults()
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("quit_times", defaults.QuitTimes)
	v.SetDefault("resize_resets_quit", defaults.ResizeResetsQuit)
	v.SetDefault("message_timeout", defaults.MessageTimeout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags makes flags registered by RegisterFlags override the environment.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks option ranges.
func (c Config) Validate() error {
	var errs []error
	if c.QuitTimes < 0 {
		errs = append(errs, fmt.Errorf("quit_times must be >= 0, got %d", c.QuitTimes))
	}
	if c.MessageTimeout < 0 {
		errs = append(errs, fmt.Errorf("message_timeout must be >= 0, got %s", c.MessageTimeout))
	}
	if c.Debug && strings.TrimSpace(c.LogFile) == "" {
		errs = append(errs, errors.New("log_file is required when debug is enabled"))
	}
	return errors.Join(errs...)
}

// EditorOptions converts the configuration to core.Options.
func (c Config) EditorOptions() core.Options {
	opts := core.DefaultOptions()
	opts.QuitTimes = c.QuitTimes
	opts.ResizeResetsQuit = c.ResizeResetsQuit
	opts.MessageTimeout = c.MessageTimeout
	return opts
}
