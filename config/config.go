package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Notify   NotifyConfig   `yaml:"notify"`
	Web      WebConfig      `yaml:"web"`
}

type DatabaseConfig struct {
	Driver   string         `yaml:"driver"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Postgres PostgresConfig `yaml:"postgres"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// PostgresConfig holds either a full DSN or the discrete connection fields.
// DSN wins when set.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
}

// NotifyConfig selects the pub/sub backend used for order notifications.
type NotifyConfig struct {
	Backend        string        `yaml:"backend"` // "redis", "kafka", "mqtt" or "none"
	Channel        string        `yaml:"channel"`
	PublishTimeout time.Duration `yaml:"publish_timeout"`
	Redis          RedisConfig   `yaml:"redis"`
	Kafka          KafkaConfig   `yaml:"kafka"`
	MQTT           MQTTConfig    `yaml:"mqtt"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
}

type MQTTConfig struct {
	Broker   string `yaml:"broker"`
	Port     int    `yaml:"port"`
	ClientID string `yaml:"client_id"`
}

type WebConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func Defaults() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver: "sqlite",
			SQLite: SQLiteConfig{Path: "mescore.db"},
			Postgres: PostgresConfig{
				Host:     "localhost",
				Port:     5432,
				Database: "mes",
				User:     "mes",
				Password: "",
				SSLMode:  "disable",
			},
		},
		Notify: NotifyConfig{
			Backend:        "redis",
			Channel:        "production_updates",
			PublishTimeout: 3 * time.Second,
			Redis: RedisConfig{
				Address: "redis:6379",
			},
			Kafka: KafkaConfig{
				Brokers: []string{"localhost:9092"},
			},
			MQTT: MQTTConfig{
				Broker:   "localhost",
				Port:     1883,
				ClientID: "mescore",
			},
		},
		Web: WebConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies .env and
// environment overrides. A missing config file or .env file is not an error.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides file settings from the process environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("MES_DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("MES_SQLITE_PATH"); v != "" {
		c.Database.SQLite.Path = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.Driver = "postgres"
		c.Database.Postgres.DSN = v
	}
	if v := os.Getenv("MES_NOTIFY_BACKEND"); v != "" {
		c.Notify.Backend = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Notify.Redis.Address = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		var brokers []string
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
		c.Notify.Kafka.Brokers = brokers
	}
	if v := os.Getenv("MQTT_BROKER"); v != "" {
		c.Notify.MQTT.Broker = v
	}
	if v := os.Getenv("MES_HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Web.Port = port
		}
	}
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
