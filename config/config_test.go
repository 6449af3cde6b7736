package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	yaml := `
api:
  address: "0.0.0.0"
  port: 8080
database:
  path: "/tmp/elpriskollen.db"
energy_price:
  area: "SE4"
cost:
  network_fee: 25.5
  supplier_markup: 6.0
  show_real_cost: true
logging:
  console_level: "DEBUG"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("write test config: %v", err)
	}

	cnfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cnfg.Api.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cnfg.Api.Port)
	}
	if cnfg.EnergyPrice.GetArea() != "SE4" {
		t.Errorf("expected area SE4, got %s", cnfg.EnergyPrice.GetArea())
	}
	if !cnfg.Cost.Settings().ShowRealCost {
		t.Error("expected show_real_cost true")
	}
	if got := cnfg.Cost.Settings().Surcharge(); got != 31.5 {
		t.Errorf("expected surcharge 31.5, got %f", got)
	}
}

func TestDefaults(t *testing.T) {
	var c AppConfig

	if got := c.EnergyPrice.GetArea(); got != "SE3" {
		t.Errorf("expected default area SE3, got %s", got)
	}
	if got := c.EnergyPrice.GetRunAt(); got != "*/15 * * * *" {
		t.Errorf("expected 15-minute refresh default, got %s", got)
	}
	if got := c.Gui.GetTimezone(); got != "Europe/Stockholm" {
		t.Errorf("expected default timezone Europe/Stockholm, got %s", got)
	}
	if got := c.Database.GetDataRetentionDays(); got != 7 {
		t.Errorf("expected default retention 7 days, got %d", got)
	}
	if got := c.Mqtt.GetTopicPrefix(); got != "elpriskollen" {
		t.Errorf("expected default topic prefix, got %s", got)
	}
	if c.Cost.Settings().Surcharge() != 0 {
		t.Error("expected zero surcharge by default")
	}
}
