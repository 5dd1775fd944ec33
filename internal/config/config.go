package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/jask/contapix/internal/account"
)

// Config holds application configuration.
type Config struct {
	Account AccountConfig
	UI      UIConfig
	Log     LogConfig
}

// AccountConfig holds the mock account settings.
type AccountConfig struct {
	InitialBalance string `mapstructure:"initial_balance"`
	IDStrategy     string `mapstructure:"id_strategy"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title          string
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

// LogConfig holds the log file settings. The TUI owns the terminal, so logs
// always go to a file.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix CONTAPIX_.
func Load() (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("account.initial_balance", "40000.00")
	v.SetDefault("account.id_strategy", "uuid")
	v.SetDefault("ui.title", "PicPay")
	v.SetDefault("ui.currency_symbol", "R$")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "contapix", "contapix.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CONTAPIX_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "contapix"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CONTAPIX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// a missing default file is fine, an explicit one must exist
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values viper cannot type-check on its own.
func (c Config) Validate() error {
	if _, err := c.InitialBalance(); err != nil {
		return err
	}
	if _, err := account.NewIDGenerator(c.Account.IDStrategy); err != nil {
		return fmt.Errorf("account.id_strategy: %w", err)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// InitialBalance parses account.initial_balance.
func (c Config) InitialBalance() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(c.Account.InitialBalance))
	if err != nil {
		return decimal.Zero, fmt.Errorf("account.initial_balance: %w", err)
	}
	return d, nil
}

// LogLevel parses log.level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(c.Log.Level)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}
