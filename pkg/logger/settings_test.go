package logger

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsFromFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/etc/logger.yaml", []byte(
		"colored: false\ntimed: true\nname_padding: 24\n"), 0o644))

	settings, err := SettingsFromFile(fsys, "/etc/logger.yaml")
	require.NoError(t, err)

	assert.False(t, settings.Colored)
	assert.True(t, settings.Timed)
	assert.Equal(t, 24, settings.NamePadding)

	// Fields missing from the file keep their defaults.
	assert.Equal(t, "15:04:05", settings.TimeFormat)
	assert.False(t, settings.RelativeTime)
}

func TestSettingsFromMissingFile(t *testing.T) {
	fsys := afero.NewMemMapFs()

	_, err := SettingsFromFile(fsys, "/nope.yaml")
	assert.Error(t, err)
}

func TestSettingsFromInvalidYAML(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/bad.yaml", []byte("colored: [\n"), 0o644))

	_, err := SettingsFromFile(fsys, "/bad.yaml")
	assert.Error(t, err)
}
