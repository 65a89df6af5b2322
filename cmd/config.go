package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DB       DB
	Mailer   Mailer
	Kafka    Kafka
	Jobs     Jobs
	Notifier Notifier
}

type DB struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"postbox"`
	SslMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// DSN renders the connection string for gorm's postgres driver.
func (d DB) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SslMode,
	)
}

// Mailer configures SMTP. An empty host logs emails instead of sending them.
type Mailer struct {
	Host     string `env:"MAILER_HOST"`
	Port     int    `env:"MAILER_PORT" envDefault:"587"`
	Login    string `env:"MAILER_LOGIN"`
	Password string `env:"MAILER_PASSWORD"`
	From     string `env:"MAILER_FROM" envDefault:"no-reply@postbox.local"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"Postbox"`
}

// Kafka configures locker signalling. Without brokers signals are only logged.
type Kafka struct {
	Brokers     []string `env:"KAFKA_BROKERS"`
	LockerTopic string   `env:"KAFKA_LOCKER_TOPIC" envDefault:"locker-commands"`
}

type Jobs struct {
	RetentionDays int    `env:"RETENTION_DAYS" envDefault:"90"`
	RetentionCron string `env:"RETENTION_CRON" envDefault:"0 3 * * *"`
}

// Retention is how long Received packages are kept.
func (j Jobs) Retention() time.Duration {
	return time.Duration(j.RetentionDays) * 24 * time.Hour
}

type Notifier struct {
	QueueSize int `env:"NOTIFY_QUEUE_SIZE" envDefault:"256"`
}

// LoadConfig reads envPath when it exists and then the process environment.
func LoadConfig(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	if c.Jobs.RetentionDays <= 0 {
		return Config{}, fmt.Errorf("RETENTION_DAYS must be positive, got %d", c.Jobs.RetentionDays)
	}
	if c.Notifier.QueueSize <= 0 {
		return Config{}, fmt.Errorf("NOTIFY_QUEUE_SIZE must be positive, got %d", c.Notifier.QueueSize)
	}
	c.Kafka.Brokers = compact(c.Kafka.Brokers)

	return c, nil
}

// NewLogger creates the JSON logger every component derives from.
func NewLogger(level string) (*slog.Logger, error) {
	var sLevel slog.Level
	if err := sLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	l := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: sLevel}))
	slog.SetDefault(l)

	return l, nil
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
