// Package config loads smsledger settings through viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/nimesh4992/Stack-sub000/internal/banks"
	"github.com/nimesh4992/Stack-sub000/internal/common"
)

// EnvPrefix is prepended to environment overrides, e.g. SMSLEDGER_DATABASE_PATH.
const EnvPrefix = "SMSLEDGER"

// Defaults.
const (
	DefaultDatabasePath = "$HOME/.local/share/smsledger/ledger.db"
	DefaultServeAddr    = "127.0.0.1:8080"
	DefaultCurrency     = "INR"
	DefaultWorkers      = 4
)

// Config is the typed view of the viper settings.
type Config struct {
	LogLevel     string
	LogFormat    string
	DatabasePath string
	PatternsFile string
	KeywordsFile string
	ServeAddr    string
	Currency     string
	Priority     []banks.BankID
	Workers      int
}

// BindEnv enables SMSLEDGER_* overrides for every dotted key.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("import.workers", DefaultWorkers)
	v.SetDefault("serve.addr", DefaultServeAddr)
	v.SetDefault("export.currency", DefaultCurrency)
}

// Load reads the global viper instance.
func Load() (*Config, error) {
	return FromViper(viper.GetViper())
}

// FromViper builds and validates a Config from v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		LogLevel:     v.GetString("logging.level"),
		LogFormat:    v.GetString("logging.format"),
		DatabasePath: ExpandPath(v.GetString("database.path")),
		PatternsFile: ExpandPath(v.GetString("patterns.file")),
		KeywordsFile: ExpandPath(v.GetString("keywords.file")),
		ServeAddr:    v.GetString("serve.addr"),
		Currency:     strings.ToUpper(strings.TrimSpace(v.GetString("export.currency"))),
		Workers:      v.GetInt("import.workers"),
	}

	for _, id := range v.GetStringSlice("detector.priority") {
		id = strings.ToLower(strings.TrimSpace(id))
		if id != "" {
			cfg.Priority = append(cfg.Priority, banks.BankID(id))
		}
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = ExpandPath(DefaultDatabasePath)
	}
	if cfg.ServeAddr == "" {
		cfg.ServeAddr = DefaultServeAddr
	}
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}
	if cfg.Workers <= 0 {
		return nil, fmt.Errorf("%w: import.workers must be positive, got %d", common.ErrInvalidConfig, cfg.Workers)
	}
	if _, err := common.ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if len(cfg.Currency) != 3 {
		return nil, fmt.Errorf("%w: export.currency %q is not an ISO 4217 code", common.ErrInvalidConfig, cfg.Currency)
	}

	return cfg, nil
}

// RegistryOptions turns the detector settings into registry options.
func (c *Config) RegistryOptions() []banks.Option {
	if len(c.Priority) == 0 {
		return nil
	}
	return []banks.Option{banks.WithPriority(c.Priority...)}
}
