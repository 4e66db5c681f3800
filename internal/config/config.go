package config

import (
	"fmt"
	"time"
)

type Config struct {
	Env            string
	BotToken       string
	AuthorizedIDs  []int64
	CSVPath        string
	Timezone       string
	PollTimeoutSec int
	DatabaseURL    string
	InfluxURL      string
	InfluxToken    string
	InfluxOrg      string
	InfluxBucket   string
}

func (c *Config) Validate() error {
	for _, req := range c.requiredFieldChecks() {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}
	if len(c.AuthorizedIDs) == 0 {
		return fmt.Errorf("AUTHORIZED_IDS must contain at least one user id")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE is invalid: %w", err)
	}
	if c.PollTimeoutSec <= 0 {
		return fmt.Errorf("POLL_TIMEOUT_SEC must be positive, got %d", c.PollTimeoutSec)
	}
	if c.InfluxToken != "" && (c.InfluxOrg == "" || c.InfluxBucket == "") {
		return fmt.Errorf("INFLUXDB_ORG and INFLUXDB_BUCKET are required when INFLUXDB_TOKEN is set")
	}
	return nil
}

type requiredEnvField struct {
	name  string
	value string
}

func (c *Config) requiredFieldChecks() []requiredEnvField {
	return []requiredEnvField{
		{name: "BOT_TOKEN", value: c.BotToken},
		{name: "CSV_PATH", value: c.CSVPath},
		{name: "TIMEZONE", value: c.Timezone},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsAuthorized(userID int64) bool {
	for _, id := range c.AuthorizedIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func (c *Config) InfluxEnabled() bool {
	return c.InfluxToken != "" && c.InfluxOrg != "" && c.InfluxBucket != ""
}

// Location resolves the reference timezone. Validate has already checked
// that the name is loadable.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
