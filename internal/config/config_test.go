package config

import "testing"

func validConfig() *Config {
	return &Config{
		Env:            "development",
		BotToken:       "token",
		AuthorizedIDs:  []int64{153127434, 159653305},
		CSVPath:        "./data/events.csv",
		Timezone:       "Europe/Rome",
		PollTimeoutSec: 30,
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when required fields are missing")
	}
}

func TestValidate_NoAuthorizedIDs(t *testing.T) {
	cfg := validConfig()
	cfg.AuthorizedIDs = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when no authorized ids are configured")
	}
}

func TestValidate_InvalidTimezone(t *testing.T) {
	cfg := validConfig()
	cfg.Timezone = "Mars/Olympus"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestValidate_NonPositivePollTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.PollTimeoutSec = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive poll timeout")
	}
}

func TestValidate_InfluxPartialConfig(t *testing.T) {
	cfg := validConfig()
	cfg.InfluxToken = "secret"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when influx token is set without org and bucket")
	}
	cfg.InfluxOrg = "home"
	cfg.InfluxBucket = "baby"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected no error with complete influx config, got %v", err)
	}
	if !cfg.InfluxEnabled() {
		t.Fatal("expected influx to be enabled with complete config")
	}
}

func TestIsAuthorized(t *testing.T) {
	cfg := validConfig()
	if !cfg.IsAuthorized(153127434) {
		t.Fatal("expected configured id to be authorized")
	}
	if cfg.IsAuthorized(42) {
		t.Fatal("expected unknown id to be unauthorized")
	}
}

func TestIsDevelopment(t *testing.T) {
	cfg := validConfig()
	if !cfg.IsDevelopment() {
		t.Fatal("expected development mode")
	}
	cfg.Env = "production"
	if cfg.IsDevelopment() {
		t.Fatal("expected non-development mode")
	}
}
