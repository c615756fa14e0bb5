package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	DB        DBConfig        `mapstructure:"db"`
	Cron      CronConfig      `mapstructure:"cron"`
	Engine    EngineConfig    `mapstructure:"engine"`
	Retention RetentionConfig `mapstructure:"retention"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type DBConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	Timezone        string        `mapstructure:"timezone"`
}

type CronConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Retention string `mapstructure:"retention"`
}

// EngineConfig carries the tunables of the scoring engine. The reliability
// thresholds and minimum samples default to the values the percentile job is
// calibrated against; changing them changes which players clear the gate.
type EngineConfig struct {
	DefaultSpanDays      int   `mapstructure:"default_span_days"`
	SpanDays             []int `mapstructure:"span_days"`
	PageSize             int   `mapstructure:"page_size"`
	MinReliability       int   `mapstructure:"min_reliability"`
	RelieverReliability  int   `mapstructure:"reliever_reliability"`
	MinAtBats            int   `mapstructure:"min_at_bats"`
	MinStarterInnings    int   `mapstructure:"min_starter_innings"`
	MinRelieverInnings   int   `mapstructure:"min_reliever_innings"`
	StreamingSpanDays    int   `mapstructure:"streaming_span_days"`
	DisplayReliability   int   `mapstructure:"display_reliability"`
}

type RetentionConfig struct {
	Enabled          bool `mapstructure:"enabled"`
	ProbableGameDays int  `mapstructure:"probable_game_days"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FBA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.conn_max_idle_time", "5m")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("cron.enabled", true)
	v.SetDefault("cron.retention", "0 30 4 * * *")
	v.SetDefault("engine.default_span_days", 14)
	v.SetDefault("engine.span_days", []int{7, 14, 30})
	v.SetDefault("engine.page_size", 25)
	v.SetDefault("engine.min_reliability", 60)
	v.SetDefault("engine.reliever_reliability", 55)
	v.SetDefault("engine.min_at_bats", 15)
	v.SetDefault("engine.min_starter_innings", 6)
	v.SetDefault("engine.min_reliever_innings", 4)
	v.SetDefault("engine.streaming_span_days", 30)
	v.SetDefault("engine.display_reliability", 70)
	v.SetDefault("retention.enabled", true)
	v.SetDefault("retention.probable_game_days", 10)

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// KnownSpan reports whether spanDays is one of the rolling windows the
// external stats job materialises. Requests for other windows fail fast.
func (c EngineConfig) KnownSpan(spanDays int) bool {
	for _, s := range c.SpanDays {
		if s == spanDays {
			return true
		}
	}
	return false
}
