// Package config loads the process configuration from the environment,
// exactly once, at startup. A missing required variable is a startup
// failure, never a runtime surprise.
package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string

	JWTSecret    string
	JWTAlgorithm string

	// Base URL of the task/motivation service; only the user/team
	// service needs it.
	TaskServiceURL string

	Port string
}

var required = []string{
	"POSTGRES_HOST",
	"POSTGRES_PORT",
	"POSTGRES_DB",
	"POSTGRES_USER",
	"POSTGRES_PASSWORD",
	"JWT_SECRET",
	"JWT_ALGORITHM",
}

// Load reads the environment and fails with the full list of missing
// variables. defaultPort is used when PORT is unset.
func Load(defaultPort string) (*Config, error) {
	var missing []string
	for _, name := range required {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	cfg := &Config{
		DBHost:         os.Getenv("POSTGRES_HOST"),
		DBPort:         os.Getenv("POSTGRES_PORT"),
		DBName:         os.Getenv("POSTGRES_DB"),
		DBUser:         os.Getenv("POSTGRES_USER"),
		DBPassword:     os.Getenv("POSTGRES_PASSWORD"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTAlgorithm:   os.Getenv("JWT_ALGORITHM"),
		TaskServiceURL: os.Getenv("TASK_SERVICE_URL"),
		Port:           os.Getenv("PORT"),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.TaskServiceURL == "" {
		cfg.TaskServiceURL = "http://localhost:8002"
	}

	return cfg, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
