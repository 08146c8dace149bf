package conf

import (
	"os"
	"time"
)

type DBConfig struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SSLMode    string
	TimeZone   string
}

type Config struct {
	DB                 DBConfig
	BalancePath        string
	PenaltySweepPeriod time.Duration
}

const defaultPenaltySweepPeriod = time.Hour

func LoadConfig() *Config {
	return &Config{
		DB: DBConfig{
			DBHost:     os.Getenv("POSTGRES_DB_HOST"),
			DBPort:     os.Getenv("POSTGRES_DB_PORT"),
			DBUser:     os.Getenv("POSTGRES_DB_USER"),
			DBPassword: os.Getenv("POSTGRES_DB_PASSWORD"),
			DBName:     os.Getenv("POSTGRES_DB_NAME"),
			SSLMode:    os.Getenv("POSTGRES_DB_SSL_MODE"),
			TimeZone:   os.Getenv("POSTGRES_DB_TIMEZONE"),
		},
		BalancePath:        os.Getenv("HABITASK_BALANCE_FILE"),
		PenaltySweepPeriod: loadSweepPeriod(),
	}
}

func loadSweepPeriod() time.Duration {
	raw := os.Getenv("HABITASK_PENALTY_SWEEP_PERIOD")
	if raw == "" {
		return defaultPenaltySweepPeriod
	}

	period, err := time.ParseDuration(raw)
	if err != nil || period <= 0 {
		return defaultPenaltySweepPeriod
	}

	return period
}
