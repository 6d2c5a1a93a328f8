package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Time is an RFC 3339 timestamp as it appears in configuration records.
// The "Z" UTC suffix is accepted and normalized; parsed values are always
// in UTC.
type Time struct {
	time.Time
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Time) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	return t.parse(raw)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Time) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return t.parse(raw)
}

func (t *Time) parse(raw string) error {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", raw, err)
	}
	t.Time = parsed.UTC()
	return nil
}

// KillChainPhase names a phase of a kill chain in a malware record.
type KillChainPhase struct {
	KillChainName string `yaml:"kill_chain_name" json:"kill_chain_name"`
	PhaseName     string `yaml:"phase_name" json:"phase_name"`
}

// Malware describes a malware object to generate. Name defaults to
// "Unknown Malware", MalwareTypes to ["unknown"] and IsFamily to true.
type Malware struct {
	Name            string           `yaml:"name" json:"name"`
	MalwareTypes    []string         `yaml:"malware_types" json:"malware_types"`
	IsFamily        *bool            `yaml:"is_family" json:"is_family"`
	Description     string           `yaml:"description" json:"description"`
	Capabilities    []string         `yaml:"capabilities" json:"capabilities"`
	KillChainPhases []KillChainPhase `yaml:"kill_chain_phases" json:"kill_chain_phases"`
	Aliases         []string         `yaml:"aliases" json:"aliases"`
}

// ThreatActor describes a threat actor to generate. Name defaults to
// "Unknown Threat Actor" and ThreatActorTypes to ["unknown"]. Each entry in
// ObservedTTPs is a MITRE ATT&CK technique id and yields a derived attack
// pattern plus a "uses" relationship.
type ThreatActor struct {
	Name                 string   `yaml:"name" json:"name"`
	ThreatActorTypes     []string `yaml:"threat_actor_types" json:"threat_actor_types"`
	Description          string   `yaml:"description" json:"description"`
	Aliases              []string `yaml:"aliases" json:"aliases"`
	Roles                []string `yaml:"roles" json:"roles"`
	Goals                []string `yaml:"goals" json:"goals"`
	Sophistication       string   `yaml:"sophistication" json:"sophistication"`
	ResourceLevel        string   `yaml:"resource_level" json:"resource_level"`
	PrimaryMotivation    string   `yaml:"primary_motivation" json:"primary_motivation"`
	SecondaryMotivations []string `yaml:"secondary_motivations" json:"secondary_motivations"`
	PersonalMotivations  []string `yaml:"personal_motivations" json:"personal_motivations"`
	ObservedTTPs         []string `yaml:"observed_ttps" json:"observed_ttps"`
}

// Campaign describes a campaign to generate. Name defaults to
// "Unknown Campaign". A nested ThreatActor yields an "attributed-to" edge
// and each Malware entry a "uses" edge.
type Campaign struct {
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description" json:"description"`
	Aliases     []string     `yaml:"aliases" json:"aliases"`
	FirstSeen   *Time        `yaml:"first_seen" json:"first_seen"`
	LastSeen    *Time        `yaml:"last_seen" json:"last_seen"`
	Objective   string       `yaml:"objective" json:"objective"`
	ThreatActor *ThreatActor `yaml:"threat_actor" json:"threat_actor"`
	Malware     []Malware    `yaml:"malware" json:"malware"`
}

// LoadMalware reads and parses a malware record from a YAML or JSON file.
func LoadMalware(path string) (*Malware, error) {
	var cfg Malware
	if err := load(path, &cfg); err != nil {
		return nil, fmt.Errorf("malware config: %w", err)
	}
	return &cfg, nil
}

// LoadThreatActor reads and parses a threat actor record from a YAML or
// JSON file.
func LoadThreatActor(path string) (*ThreatActor, error) {
	var cfg ThreatActor
	if err := load(path, &cfg); err != nil {
		return nil, fmt.Errorf("threat actor config: %w", err)
	}
	return &cfg, nil
}

// LoadCampaign reads and parses a campaign record from a YAML or JSON file.
func LoadCampaign(path string) (*Campaign, error) {
	var cfg Campaign
	if err := load(path, &cfg); err != nil {
		return nil, fmt.Errorf("campaign config: %w", err)
	}
	return &cfg, nil
}

// ParseMalware parses a malware record from YAML or JSON bytes.
func ParseMalware(data []byte) (*Malware, error) {
	var cfg Malware
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malware config: %w", err)
	}
	return &cfg, nil
}

// ParseThreatActor parses a threat actor record from YAML or JSON bytes.
func ParseThreatActor(data []byte) (*ThreatActor, error) {
	var cfg ThreatActor
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("threat actor config: %w", err)
	}
	return &cfg, nil
}

// ParseCampaign parses a campaign record from YAML or JSON bytes.
func ParseCampaign(data []byte) (*Campaign, error) {
	var cfg Campaign
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("campaign config: %w", err)
	}
	return &cfg, nil
}

// load reads a file and unmarshals it into out. YAML is a superset of JSON,
// so both config flavors decode through the same path.
func load(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}
