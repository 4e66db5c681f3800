package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	internalconfig "github.com/ninfea/babylog/internal/config"
)

type envConfig struct {
	Env            string  `env:"ENV" envDefault:"production"`
	BotToken       string  `env:"BOT_TOKEN,required"`
	AuthorizedIDs  []int64 `env:"AUTHORIZED_IDS,required" envSeparator:","`
	CSVPath        string  `env:"CSV_PATH" envDefault:"./data/events.csv"`
	Timezone       string  `env:"TIMEZONE" envDefault:"Europe/Rome"`
	PollTimeoutSec int     `env:"POLL_TIMEOUT_SEC" envDefault:"30"`
	DatabaseURL    string  `env:"DATABASE_URL"`
	InfluxURL      string  `env:"INFLUXDB_URL" envDefault:"http://localhost:8086"`
	InfluxToken    string  `env:"INFLUXDB_TOKEN"`
	InfluxOrg      string  `env:"INFLUXDB_ORG"`
	InfluxBucket   string  `env:"INFLUXDB_BUCKET"`
}

func Load() (*internalconfig.Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("environment variables are invalid or missing: %w", err)
	}

	cfg := &internalconfig.Config{
		Env:            raw.Env,
		BotToken:       raw.BotToken,
		AuthorizedIDs:  raw.AuthorizedIDs,
		CSVPath:        raw.CSVPath,
		Timezone:       raw.Timezone,
		PollTimeoutSec: raw.PollTimeoutSec,
		DatabaseURL:    raw.DatabaseURL,
		InfluxURL:      raw.InfluxURL,
		InfluxToken:    raw.InfluxToken,
		InfluxOrg:      raw.InfluxOrg,
		InfluxBucket:   raw.InfluxBucket,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
