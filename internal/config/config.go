package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"journal-desktop/internal/logger"
)

const EnvPrefix = "JOURNAL"

type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	Setup      SetupConfig      `mapstructure:"setup"`
	Transition TransitionConfig `mapstructure:"transition"`
	Window     SizeConfig       `mapstructure:"window"`
	Splash     SizeConfig       `mapstructure:"splash"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SetupConfig holds the durations of both setup phases. BackendTimeout is the
// ceiling of the bounded-time envelope around BackendWork.
type SetupConfig struct {
	FrontendWork   time.Duration `mapstructure:"frontend_work"`
	BackendWork    time.Duration `mapstructure:"backend_work"`
	BackendTimeout time.Duration `mapstructure:"backend_timeout"`
}

// TransitionConfig holds the two cosmetic pacing windows of the splash exit.
type TransitionConfig struct {
	FadeOutDelay time.Duration `mapstructure:"fade_out_delay"`
	RevealDelay  time.Duration `mapstructure:"reveal_delay"`
}

type SizeConfig struct {
	Width  float32 `mapstructure:"width"`
	Height float32 `mapstructure:"height"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("setup.frontend_work", 3*time.Second)
	v.SetDefault("setup.backend_work", 10*time.Second)
	v.SetDefault("setup.backend_timeout", 30*time.Second)

	v.SetDefault("transition.fade_out_delay", 1000*time.Millisecond)
	v.SetDefault("transition.reveal_delay", 1200*time.Millisecond)

	v.SetDefault("window.width", 1000)
	v.SetDefault("window.height", 700)
	v.SetDefault("splash.width", 480)
	v.SetDefault("splash.height", 320)
}

// Default returns the built-in configuration, ignoring files and environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config defaults do not decode: %v", err))
	}
	return &cfg
}

// Load reads the configuration. An empty path skips the file and uses
// defaults plus JOURNAL_* environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}

	if c.Setup.FrontendWork < 0 {
		errs = append(errs, errors.New("setup.frontend_work must not be negative"))
	}
	if c.Setup.BackendWork < 0 {
		errs = append(errs, errors.New("setup.backend_work must not be negative"))
	}
	if c.Setup.BackendTimeout <= 0 {
		errs = append(errs, errors.New("setup.backend_timeout must be positive"))
	}
	if c.Transition.FadeOutDelay < 0 || c.Transition.RevealDelay < 0 {
		errs = append(errs, errors.New("transition delays must not be negative"))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, errors.New("window size must be positive"))
	}
	if c.Splash.Width <= 0 || c.Splash.Height <= 0 {
		errs = append(errs, errors.New("splash size must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
