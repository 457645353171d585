package logger

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Settings controls the formatting of a Logger.
type Settings struct {
	// Colored enables ANSI colors for warnings and errors. Textual level
	// prefixes are used instead when disabled.
	Colored bool `yaml:"colored"`

	// Timed prepends a timestamp to every line.
	Timed bool `yaml:"timed"`

	// RelativeTime renders timestamps as whole seconds since the logger
	// was created instead of wall-clock time.
	RelativeTime bool `yaml:"relative_time"`

	// TimeFormat is the wall-clock timestamp layout, in time.Format form.
	TimeFormat string `yaml:"time_format"`

	// NamePadding is the column width the "[name] " tag is padded to.
	NamePadding int `yaml:"name_padding"`
}

// DefaultSettings returns the settings used when none are given.
func DefaultSettings() Settings {
	return Settings{
		Colored:     true,
		TimeFormat:  "15:04:05",
		NamePadding: 20,
	}
}

// SettingsFromFile loads settings from a YAML file. Fields missing from the
// file keep their default values.
func SettingsFromFile(fsys afero.Fs, path string) (Settings, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return Settings{}, err
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("logger: parsing %s: %w", path, err)
	}

	return settings, nil
}
