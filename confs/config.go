package confs

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

type Config struct {
	Addr      string
	JWTSecret []byte
	// AppURL is the public base URL embedded in password reset links.
	AppURL string
	SMTP   SMTPConfig
	// Alert thresholds for the telemetry sweep.
	WaterCapacityMin float64
	TemperatureMax   float64
	AlertSweepEvery  time.Duration
}

// LoadConfig loads environment variables from a .env file if present
// and validates essential settings.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// Not an error at runtime; deployments set real env vars
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	cfg := &Config{
		Addr:      getEnv("ADDR", "0.0.0.0:3536"),
		JWTSecret: []byte(secret),
		AppURL:    getEnv("APP_URL", "http://localhost:3536"),
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			From:     getEnv("SMTP_FROM", "agriwise@gmail.com"),
		},
		WaterCapacityMin: getEnvFloat("ALERT_WATER_CAPACITY_MIN", 20),
		TemperatureMax:   getEnvFloat("ALERT_TEMPERATURE_MAX", 45),
		AlertSweepEvery:  5 * time.Minute,
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var f float64
	if _, err := fmt.Sscanf(v, "%g", &f); err != nil {
		log.Printf("warning: invalid value for %s: %q, using default", key, v)
		return fallback
	}
	return f
}
