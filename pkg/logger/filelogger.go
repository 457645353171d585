package logger

import (
	"github.com/spf13/afero"
)

// NewFileLogger creates a logger that writes to a file on the given
// filesystem. Colors are always disabled for file sinks.
//
// When the file cannot be created, it returns a console logger as a
// fallback together with the error, after logging the failure through the
// fallback. The caller can keep logging either way.
func NewFileLogger(fsys afero.Fs, name, path string, params *Params) (*Logger, error) {
	if params == nil {
		params = &Params{}
	}

	file, err := fsys.Create(path)
	if err != nil {
		fallback := New(name, params)
		fallback.Errorf("could not open %q, falling back to console logging: %v", path, err)

		return fallback, err
	}

	settings := DefaultSettings()
	if params.Settings != nil {
		settings = *params.Settings
	}
	settings.Colored = false

	fileParams := *params
	fileParams.Out = file
	fileParams.Settings = &settings

	return New(name, &fileParams), nil
}
