package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile is a named backend environment.
type Profile struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url"`
}

type profileRegistry struct {
	Profiles []Profile `yaml:"profiles"`
}

// LoadProfiles reads the environment profiles file. A missing file is not an
// error: profiles are optional and base_url alone is enough to run.
func LoadProfiles(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read profiles file: %w", err)
	}

	var reg profileRegistry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse profiles file: %w", err)
	}

	for _, p := range reg.Profiles {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("profile with empty name in %s", path)
		}
		if strings.TrimSpace(p.BaseURL) == "" {
			return nil, fmt.Errorf("profile %q missing base_url", p.Name)
		}
	}
	return reg.Profiles, nil
}

// ProfileByName returns the profile entry with the given name.
func ProfileByName(profiles []Profile, name string) (Profile, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range profiles {
		if strings.ToLower(strings.TrimSpace(p.Name)) == name {
			return p, true
		}
	}
	return Profile{}, false
}

// ResolveBaseURL applies the selected profile, if any, over the configured
// base URL.
func ResolveBaseURL(cfg *Config) (string, error) {
	if cfg.Profile == "" {
		return cfg.BaseURL, nil
	}
	profiles, err := LoadProfiles(cfg.ProfilesFile)
	if err != nil {
		return "", err
	}
	p, ok := ProfileByName(profiles, cfg.Profile)
	if !ok {
		return "", fmt.Errorf("profile %q not found in %s", cfg.Profile, cfg.ProfilesFile)
	}
	return p.BaseURL, nil
}
