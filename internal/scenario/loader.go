package scenario

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the scenario with the given ID.
// Search order: customPath -> ~/.gravswarm/scenarios/<id>.yaml ->
// ./scenarios/<id>.yaml -> embedded default.
func Load(id, customPath string) (Scenario, error) {
	var s Scenario

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return s, fmt.Errorf("scenario: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("scenario: failed to parse %s: %w", customPath, err)
		}
		if err := s.Validate(); err != nil {
			return s, err
		}
		return s, nil
	}

	filename := id + ".yaml"

	// Try user config directory
	if userPath := userScenarioPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &s); err == nil && s.Validate() == nil {
				return s, nil
			}
		}
	}

	// Try local scenarios directory
	if data, err := os.ReadFile(filepath.Join("scenarios", filename)); err == nil {
		if err := yaml.Unmarshal(data, &s); err == nil && s.Validate() == nil {
			return s, nil
		}
	}

	// Use embedded default YAML
	embedded := GetDefaultYAML(id)
	if embedded == nil {
		return s, fmt.Errorf("scenario: unknown scenario %q", id)
	}
	if err := yaml.Unmarshal(embedded, &s); err != nil {
		return DefaultScenario(), nil // Fallback to hardcoded if embed fails
	}
	return s, nil
}

// userScenarioPath returns the path to a user scenario file, or empty if the
// home directory is unavailable.
func userScenarioPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gravswarm", "scenarios", filename)
}
