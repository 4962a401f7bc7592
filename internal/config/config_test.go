package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mrsinham/approxdate/internal/approxdate"
)

func TestLoad_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "approxdate.yaml")

	content := `
log:
  level: debug
  pretty: false
clock:
  now: "2020-01-01"
compat:
  legacy_unknown_checks: true
  legacy_ordering_key: false
dicom:
  birth_date_tag: PatientBirthDate
  study_date_tag: AcquisitionDate
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Log.Level != "debug" || cfg.Log.Pretty {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
	if cfg.DICOM.StudyDateTag != "AcquisitionDate" {
		t.Errorf("StudyDateTag = %q, want AcquisitionDate", cfg.DICOM.StudyDateTag)
	}

	clk, err := cfg.NewClock()
	if err != nil {
		t.Fatalf("NewClock failed: %v", err)
	}
	if want := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC); !clk.Now().Equal(want) {
		t.Errorf("clock now = %v, want %v", clk.Now(), want)
	}

	d := approxdate.New(cfg.DateOptions()...)
	if d.UnknownChecks() != approxdate.LegacyUnknownChecks {
		t.Errorf("expected legacy unknown checks")
	}
	if d.OrderingKey() != approxdate.FieldOrderingKey {
		t.Errorf("expected field ordering key")
	}
}

func TestLoad_DefaultsFillMissingSections(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(configPath, []byte("log:\n  level: warn\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DICOM.BirthDateTag != "PatientBirthDate" {
		t.Errorf("BirthDateTag = %q, want default", cfg.DICOM.BirthDateTag)
	}
	if !cfg.Log.Pretty {
		t.Errorf("Pretty should keep its default")
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	_, err := Load("/non/existent/path/config.yaml")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(configPath, []byte("log: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(configPath); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "Config.Log.Level"},
		{name: "bad date", mutate: func(c *Config) { c.Clock.Now = "01/02/2020" }, wantErr: "Config.Clock.Now"},
		{name: "missing tag", mutate: func(c *Config) { c.DICOM.BirthDateTag = "" }, wantErr: "Config.DICOM.BirthDateTag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestSave_AndLoadBack(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "saved.yaml")
	cfg := Default()
	cfg.Clock.Now = "2011-11-11"
	cfg.Compat.LegacyOrderingKey = true

	if err := Save(cfg, configPath); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}

func TestNewClock_WallClock(t *testing.T) {
	cfg := Default()
	clk, err := cfg.NewClock()
	if err != nil {
		t.Fatal(err)
	}
	if time.Since(clk.Now()) > time.Minute {
		t.Errorf("expected wall clock, got %v", clk.Now())
	}
}
