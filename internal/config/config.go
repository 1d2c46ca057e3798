package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the server and the CLI need to run. Values come
// from the environment (optionally via a .env file), with defaults suitable
// for local development.
type Config struct {
	AppPort        string
	DatabaseDriver string
	DatabaseURL    string
	JWTSecret      string
	RabbitMQURL    string
}

// Load reads the configuration from the environment. A missing .env file is
// not an error; explicit environment variables always win.
func Load() Config {
	// Best effort: absent .env just means plain env vars.
	_ = godotenv.Load()

	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_URL", "stoq.db")
	viper.SetDefault("JWT_SECRET", "change-me")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	return Config{
		AppPort:        viper.GetString("APP_PORT"),
		DatabaseDriver: viper.GetString("DATABASE_DRIVER"),
		DatabaseURL:    viper.GetString("DATABASE_URL"),
		JWTSecret:      viper.GetString("JWT_SECRET"),
		RabbitMQURL:    viper.GetString("RABBITMQ_URL"),
	}
}
