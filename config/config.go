package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mardo/elpriskollen-go/logging"
	"github.com/mardo/elpriskollen-go/types"
	"github.com/spf13/viper"
)

type AppConfigApi struct {
	Address string
	Port    int16
	// Secret for the cost-settings cookie session. Generate once and
	// keep stable or visitors lose their saved tariffs on restart.
	SessionKey string `mapstructure:"session_key"`
	// If not assigned, the server will serve embedded files.
	// If assigned, the server will serve files from the directory,
	// that must contain a "static" and "templates" directory.
	// This is useful for development.
	WwwDir *string `mapstructure:"www_dir"`
}

type AppConfigDatabase struct {
	Path string
	// How many days data should be stored in database before it gets purged
	DataRetentionDays *int `mapstructure:"data_retention_days"`
	// How many days daily backup files should be stored before they gets deleted
	BackupRetentionDays *int `mapstructure:"backup_retention_days"`
}

func (d AppConfigDatabase) GetDataRetentionDays() int {
	if d.DataRetentionDays == nil {
		return 7
	}
	return *d.DataRetentionDays
}

func (d AppConfigDatabase) GetBackupRetentionDays() int {
	if d.BackupRetentionDays == nil {
		return 30
	}
	return *d.BackupRetentionDays
}

type AppConfigEnergyPrice struct {
	Area  string  `mapstructure:"area"`   // "SE1", "SE2", "SE3", "SE4"
	RunAt *string `mapstructure:"run_at"` // cron spec for the refresh task
}

func (e AppConfigEnergyPrice) GetArea() string {
	if e.Area == "" {
		return "SE3"
	}
	return e.Area
}

func (e AppConfigEnergyPrice) GetRunAt() string {
	if e.RunAt == nil {
		return "*/15 * * * *"
	}
	return *e.RunAt
}

// AppConfigCost is the default tariff shown to visitors who have not
// saved their own. Fees in öre/kWh.
type AppConfigCost struct {
	NetworkFee     float64 `mapstructure:"network_fee"`
	SupplierMarkup float64 `mapstructure:"supplier_markup"`
	ShowRealCost   bool    `mapstructure:"show_real_cost"`
}

func (c AppConfigCost) Settings() types.CostSettings {
	return types.CostSettings{
		NetworkFee:     c.NetworkFee,
		SupplierMarkup: c.SupplierMarkup,
		ShowRealCost:   c.ShowRealCost,
	}
}

type AppConfigMqtt struct {
	Enabled     bool   `mapstructure:"enabled"`
	Broker      string `mapstructure:"broker"`
	Port        int16  `mapstructure:"port"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	TopicPrefix string `mapstructure:"topic_prefix"`
}

func (m AppConfigMqtt) GetTopicPrefix() string {
	if m.TopicPrefix == "" {
		return "elpriskollen"
	}
	return m.TopicPrefix
}

type AppConfigGui struct {
	// Timezone for displaying times in the GUI, default: Europe/Stockholm
	Timezone *string `mapstructure:"timezone"`
}

func (g AppConfigGui) GetTimezone() string {
	if g.Timezone == nil {
		return "Europe/Stockholm"
	}
	return *g.Timezone
}

type AppConfigLogging struct {
	// Min log level for database : "DEBUG", "INFO", "WARN", "ERROR", default: "INFO"
	DbLevel *string `mapstructure:"db_level"`
	// Log attributes format: "TEXT", "JSON", default: "JSON"
	DbAttrsFormat *string `mapstructure:"db_attrs_format"`
	// Maximum number of log entries in the database, default: 10000
	DbMaxEntries *int `mapstructure:"db_max_entries"`
	// Min log level for console: "DEBUG", "INFO", "WARN", "ERROR", default: "INFO"
	ConsoleLevel *string `mapstructure:"console_level"`
}

func (l AppConfigLogging) GetDbLevel() slog.Level {
	return logging.LevelFromString(l.DbLevel)
}

func (l AppConfigLogging) GetDbAttrsFormat() logging.LogAttrFormat {
	if l.DbAttrsFormat == nil {
		return "JSON"
	}
	if strings.EqualFold(*l.DbAttrsFormat, "text") {
		return "TEXT"
	}
	return "JSON"
}

func (l AppConfigLogging) GetDbMaxEntries() int {
	if l.DbMaxEntries == nil {
		return 10000
	}
	return *l.DbMaxEntries
}

func (l AppConfigLogging) GetConsoleLevel() slog.Level {
	return logging.LevelFromString(l.ConsoleLevel)
}

type AppConfig struct {
	Api         AppConfigApi
	Database    AppConfigDatabase
	EnergyPrice AppConfigEnergyPrice `mapstructure:"energy_price"`
	Cost        AppConfigCost        `mapstructure:"cost"`
	Mqtt        AppConfigMqtt        `mapstructure:"mqtt"`
	Gui         AppConfigGui         `mapstructure:"gui"`
	Logging     AppConfigLogging     `mapstructure:"logging"`
}

func Load(path string) (*AppConfig, error) {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.AddConfigPath("config")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("ELPRISKOLLEN")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var c AppConfig

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	if err := viper.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config file: %w", err)
	}

	return &c, nil
}
