package domain

import (
	"os"
	"path/filepath"
)

// AppSettings holds user-configurable application settings.
type AppSettings struct {
	// Output configures where and how output files are named.
	Output OutputSettings

	// Worker configures the external PDF worker process.
	Worker WorkerSettings

	// Watch configures the optional watch-folder.
	Watch WatchSettings
}

// OutputSettings configures output naming defaults.
type OutputSettings struct {
	// Directory is where merged and split files are written.
	Directory string

	// NamePrefix is prepended to every derived output name.
	NamePrefix string

	// NameSuffix is appended to every derived output name, before
	// the extension.
	NameSuffix string
}

// WorkerSettings configures the out-of-process PDF worker.
type WorkerSettings struct {
	// Binary is the path or command name of the worker executable.
	Binary string

	// TimeoutSeconds bounds a single worker request. Zero disables
	// the timeout.
	TimeoutSeconds int
}

// WatchSettings configures the watch-folder adapter.
type WatchSettings struct {
	// Enabled turns the watch-folder on.
	Enabled bool

	// Directory is the folder observed for dropped PDFs.
	Directory string
}

// DefaultAppSettings returns settings with sensible defaults.
// The output directory defaults to ~/Documents/bindery when the home
// directory is resolvable, otherwise the current directory.
func DefaultAppSettings() *AppSettings {
	outDir := "."
	if home, err := os.UserHomeDir(); err == nil {
		outDir = filepath.Join(home, "Documents", "bindery")
	}

	return &AppSettings{
		Output: OutputSettings{
			Directory: outDir,
		},
		Worker: WorkerSettings{
			Binary:         "bindery-worker",
			TimeoutSeconds: 120,
		},
		Watch: WatchSettings{
			Enabled: false,
		},
	}
}
