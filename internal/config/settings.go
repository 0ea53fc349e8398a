package config

// Settings represents global application settings.
// This corresponds to ~/.mes/settings.yaml.
type Settings struct {
	Version int `yaml:"version"`
	// Operator is stamped on audit entries as the acting user.
	Operator string `yaml:"operator"`
	// Theme is "system", "light" or "dark".
	Theme string `yaml:"theme"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:  1,
		Operator: "operator",
		Theme:    "system",
	}
}

// LoadSettings loads settings from disk, falling back to defaults when
// the file doesn't exist.
func LoadSettings() (*Settings, error) {
	path, err := SettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, NewSettings)
}

// SaveSettings writes settings to disk.
func SaveSettings(s *Settings) error {
	path, err := SettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, s)
}
