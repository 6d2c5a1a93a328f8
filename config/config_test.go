package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseCampaign_JSON(t *testing.T) {
	data := []byte(`{
		"name": "Operation Dust Storm",
		"description": "Long-running espionage campaign",
		"aliases": ["DustStorm"],
		"first_seen": "2023-01-15T00:00:00Z",
		"last_seen": "2023-06-01T12:30:00Z",
		"objective": "data theft",
		"threat_actor": {
			"name": "APT-0",
			"observed_ttps": ["T1055", "T1566.001"]
		},
		"malware": [
			{"name": "Dropper-A", "malware_types": ["dropper"]},
			{"name": "RAT-B"}
		]
	}`)

	cfg, err := ParseCampaign(data)
	if err != nil {
		t.Fatalf("ParseCampaign() error = %v", err)
	}

	if cfg.Name != "Operation Dust Storm" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.FirstSeen == nil {
		t.Fatal("FirstSeen not parsed")
	}
	want := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	if !cfg.FirstSeen.Equal(want) {
		t.Errorf("FirstSeen = %v, want %v", cfg.FirstSeen.Time, want)
	}
	if cfg.ThreatActor == nil || len(cfg.ThreatActor.ObservedTTPs) != 2 {
		t.Errorf("ThreatActor = %+v, want 2 observed TTPs", cfg.ThreatActor)
	}
	if len(cfg.Malware) != 2 {
		t.Errorf("Malware = %d entries, want 2", len(cfg.Malware))
	}
}

func TestParseCampaign_YAML(t *testing.T) {
	data := []byte(`
name: Operation Dust Storm
first_seen: "2023-01-15T00:00:00Z"
malware:
  - name: Dropper-A
    is_family: false
`)

	cfg, err := ParseCampaign(data)
	if err != nil {
		t.Fatalf("ParseCampaign() error = %v", err)
	}
	if cfg.FirstSeen == nil {
		t.Fatal("FirstSeen not parsed")
	}
	if len(cfg.Malware) != 1 {
		t.Fatalf("Malware = %d entries, want 1", len(cfg.Malware))
	}
	if cfg.Malware[0].IsFamily == nil || *cfg.Malware[0].IsFamily {
		t.Error("is_family: false not preserved")
	}
}

func TestParseCampaign_BadTimestamp(t *testing.T) {
	_, err := ParseCampaign([]byte(`{"name": "x", "first_seen": "January 15th"}`))
	if err == nil {
		t.Error("ParseCampaign() = nil error for malformed timestamp")
	}
}

func TestTime_OffsetNormalizedToUTC(t *testing.T) {
	cfg, err := ParseCampaign([]byte(`{"first_seen": "2023-01-15T02:00:00+02:00"}`))
	if err != nil {
		t.Fatalf("ParseCampaign() error = %v", err)
	}
	want := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	if !cfg.FirstSeen.Equal(want) || cfg.FirstSeen.Location() != time.UTC {
		t.Errorf("FirstSeen = %v, want %v in UTC", cfg.FirstSeen.Time, want)
	}
}

func TestParseMalware_Defaults(t *testing.T) {
	cfg, err := ParseMalware([]byte(`{}`))
	if err != nil {
		t.Fatalf("ParseMalware() error = %v", err)
	}
	// Defaults are applied by the generator, not the parser: an empty
	// record parses cleanly with zero values.
	if cfg.Name != "" || cfg.IsFamily != nil || cfg.MalwareTypes != nil {
		t.Errorf("empty record not zero-valued: %+v", cfg)
	}
}

func TestLoadThreatActor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "actor.yaml")
	content := []byte(`
name: APT-0
threat_actor_types: [nation-state]
sophistication: advanced
observed_ttps: [T1055]
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadThreatActor(path)
	if err != nil {
		t.Fatalf("LoadThreatActor() error = %v", err)
	}
	if cfg.Name != "APT-0" || cfg.Sophistication != "advanced" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadCampaign_MissingFile(t *testing.T) {
	if _, err := LoadCampaign(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("LoadCampaign() = nil error for missing file")
	}
}
