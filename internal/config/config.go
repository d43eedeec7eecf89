package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	mahjong "mahjong-go"
)

type Config struct {
	App   AppConfig   `mapstructure:"app"`
	HTTP  HTTPConfig  `mapstructure:"http"`
	NATS  NATSConfig  `mapstructure:"nats"`
	Redis RedisConfig `mapstructure:"redis"`
	Rules RulesConfig `mapstructure:"rules"`
}

type AppConfig struct {
	Name      string `mapstructure:"name"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"` // json or text
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	Mode            string        `mapstructure:"mode"` // gin mode: debug, release, test
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

type NATSConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	URL            string        `mapstructure:"url"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	Subject        string        `mapstructure:"subject"`
	QueueGroup     string        `mapstructure:"queue_group"`
	WorkerCount    int           `mapstructure:"worker_count"`
	BufferSize     int           `mapstructure:"buffer_size"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type RedisConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Host      string        `mapstructure:"host"`
	Port      int           `mapstructure:"port"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	PoolSize  int           `mapstructure:"pool_size"`
	KeyPrefix string        `mapstructure:"key_prefix"`
	TTL       time.Duration `mapstructure:"ttl"`
}

// Addr returns host:port.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RulesConfig struct {
	OpenTanyao    bool `mapstructure:"open_tanyao"`
	KazoeYakuman  bool `mapstructure:"kazoe_yakuman"`
	KiriageMangan bool `mapstructure:"kiriage_mangan"`
	DoubleYakuman bool `mapstructure:"double_yakuman"`
}

// ToRules converts the rules section into engine rules.
func (c RulesConfig) ToRules() mahjong.Rules {
	return mahjong.Rules{
		OpenTanyao:    c.OpenTanyao,
		KazoeYakuman:  c.KazoeYakuman,
		KiriageMangan: c.KiriageMangan,
		DoubleYakuman: c.DoubleYakuman,
	}
}

func setDefaults(v *viper.Viper) {
	rules := mahjong.DefaultRules()

	v.SetDefault("app.name", "mahjong-score")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_format", "json")

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.mode", "release")
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("http.cors_origins", []string{"*"})

	v.SetDefault("nats.enabled", false)
	v.SetDefault("nats.url", "nats://127.0.0.1:4222")
	v.SetDefault("nats.max_reconnects", 60)
	v.SetDefault("nats.reconnect_wait", 2*time.Second)
	v.SetDefault("nats.subject", "mahjong.score")
	v.SetDefault("nats.queue_group", "mahjong-scorers")
	v.SetDefault("nats.worker_count", 8)
	v.SetDefault("nats.buffer_size", 1024)
	v.SetDefault("nats.request_timeout", 5*time.Second)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "127.0.0.1")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.key_prefix", "mahjong:score:")
	v.SetDefault("redis.ttl", 24*time.Hour)

	v.SetDefault("rules.open_tanyao", rules.OpenTanyao)
	v.SetDefault("rules.kazoe_yakuman", rules.KazoeYakuman)
	v.SetDefault("rules.kiriage_mangan", rules.KiriageMangan)
	v.SetDefault("rules.double_yakuman", rules.DoubleYakuman)
}

// Load reads the YAML file at configPath on top of the defaults. An empty path
// uses defaults and environment only. Every key can be overridden from the
// environment with the MAHJONG_ prefix, e.g. MAHJONG_REDIS_HOST.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("mahjong")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
