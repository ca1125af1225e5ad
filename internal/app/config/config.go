package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	NetAddr    string        `env:"RUN_ADDRESS"`
	DBConnect  string        `env:"DATABASE_URI"`
	LogLevel   string        `env:"LOG_LEVEL"`
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL"`
	KafkaAddr  string        `env:"KAFKA_ADDRESS"`
	KafkaTopic string        `env:"KAFKA_TOPIC"`
	RedisAddr  string        `env:"REDIS_ADDRESS"`
}

func InitConfig() (config Config) {
	flag.StringVar(&config.NetAddr, "a", "localhost:8080", "net address host:port")
	flag.StringVar(&config.DBConnect, "d", "", "database credentials in format: host=host port=port user=myuser password=xxxx dbname=mydb sslmode=disable")
	flag.StringVar(&config.LogLevel, "l", "info", "log level")
	flag.StringVar(&config.JWTSecret, "s", "", "secret for signing bearer tokens")
	flag.DurationVar(&config.TokenTTL, "t", time.Hour, "bearer token time to live")
	flag.StringVar(&config.KafkaAddr, "k", "", "kafka broker address for order notifications, empty disables kafka")
	flag.StringVar(&config.KafkaTopic, "topic", "travel-order-events", "kafka topic for order notifications")
	flag.StringVar(&config.RedisAddr, "r", "", "redis address for the revoked token store, empty keeps tokens in memory")
	flag.Parse()

	if err := env.Parse(&config); err != nil {
		panic(fmt.Errorf("error while parsing config: %w", err))
	}

	return
}
