package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source.URI != "mongodb://localhost:27017" {
		t.Errorf("source URI = %q", cfg.Source.URI)
	}
	if cfg.Source.Database != "spotify" || cfg.Source.Collection != "songs" {
		t.Errorf("source defaults = %+v", cfg.Source)
	}
	if cfg.UI.TopN != 10 || cfg.UI.RefreshIntervalSeconds != 60 {
		t.Errorf("ui defaults = %+v", cfg.UI)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SPINDASH_SOURCE_URI", "./history.db")
	t.Setenv("SPINDASH_UI_TOP_N", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source.URI != "./history.db" {
		t.Errorf("source URI = %q", cfg.Source.URI)
	}
	if cfg.UI.TopN != 25 {
		t.Errorf("top_n = %d", cfg.UI.TopN)
	}
}

func TestLoad_LegacyMongoURI(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("MONGO_URI", "mongodb://db.example:27017")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source.URI != "mongodb://db.example:27017" {
		t.Errorf("legacy MONGO_URI not honored: %q", cfg.Source.URI)
	}
}
