package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("nonexistent.env")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if !cfg.Server.SeedSampleData {
		t.Error("SeedSampleData = false, want true by default")
	}
	if cfg.MongoDB.URI != "mongodb://localhost:27017" {
		t.Errorf("MongoDB URI = %q", cfg.MongoDB.URI)
	}
	if cfg.MongoDB.DBName != "borastock" {
		t.Errorf("MongoDB DBName = %q", cfg.MongoDB.DBName)
	}
	if cfg.Reporting.CronSchedule != "0 20 * * *" {
		t.Errorf("Reporting CronSchedule = %q", cfg.Reporting.CronSchedule)
	}
	if cfg.Reporting.Timezone != "Europe/Paris" {
		t.Errorf("Timezone = %q", cfg.Reporting.Timezone)
	}
	if cfg.Sheets.SpreadsheetID != "" || cfg.Alerts.WebhookURL != "" {
		t.Error("optional subsystems should be disabled by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("SEED_SAMPLE_DATA", "false")
	t.Setenv("MONGODB_DB_NAME", "warehouse")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("ALERT_WEBHOOK_URL", "https://hooks.example.com/stock")

	cfg, err := Load("nonexistent.env")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Server.SeedSampleData {
		t.Error("SeedSampleData = true, want false")
	}
	if cfg.MongoDB.DBName != "warehouse" {
		t.Errorf("DBName = %q", cfg.MongoDB.DBName)
	}
	if cfg.Reporting.Timezone != "UTC" {
		t.Errorf("Timezone = %q", cfg.Reporting.Timezone)
	}
	if cfg.Alerts.WebhookURL != "https://hooks.example.com/stock" {
		t.Errorf("WebhookURL = %q", cfg.Alerts.WebhookURL)
	}
	if cfg.Alerts.CronSchedule != "0 8 * * *" {
		t.Errorf("Alerts CronSchedule = %q", cfg.Alerts.CronSchedule)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: "8080"},
			MongoDB:   MongoDBConfig{URI: "mongodb://localhost:27017", DBName: "borastock"},
			Reporting: ReportingConfig{CronSchedule: "0 20 * * *", Timezone: "Europe/Paris"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"missing port", func(c *Config) { c.Server.Port = "" }, true},
		{"missing mongo uri", func(c *Config) { c.MongoDB.URI = "" }, true},
		{"missing mongo db name", func(c *Config) { c.MongoDB.DBName = "" }, true},
		{"sheet id without credentials", func(c *Config) { c.Sheets.SpreadsheetID = "sheet123" }, true},
		{"sheet id with credentials", func(c *Config) {
			c.Sheets.SpreadsheetID = "sheet123"
			c.Sheets.CredentialsPath = "/etc/creds.json"
		}, false},
		{"missing report schedule", func(c *Config) { c.Reporting.CronSchedule = "" }, true},
		{"missing timezone", func(c *Config) { c.Reporting.Timezone = "" }, true},
		{"webhook without schedule", func(c *Config) { c.Alerts.WebhookURL = "https://hooks.example.com" }, true},
		{"webhook with schedule", func(c *Config) {
			c.Alerts.WebhookURL = "https://hooks.example.com"
			c.Alerts.CronSchedule = "0 8 * * *"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
