package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Delimiter != ";" {
		t.Errorf("delimiter: expected ';', got %q", cfg.Delimiter)
	}
	if cfg.IDColumn != "ResponseId" {
		t.Errorf("id column: expected ResponseId, got %q", cfg.IDColumn)
	}
	if cfg.StructureLimit != 20 {
		t.Errorf("structure limit: expected 20, got %d", cfg.StructureLimit)
	}
	if cfg.TopN != 10 {
		t.Errorf("top n: expected 10, got %d", cfg.TopN)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SURVEY_TOP_N", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TopN != 25 {
		t.Errorf("expected env override 25, got %d", cfg.TopN)
	}
}
