package main

import (
	"fmt"
	"os"

	"github.com/bindery-labs/bindery-cli/internal/adapters/driven/config/file"
	"github.com/bindery-labs/bindery-cli/internal/adapters/driven/storage/memory"
	"github.com/bindery-labs/bindery-cli/internal/adapters/driven/storage/sqlite"
	"github.com/bindery-labs/bindery-cli/internal/adapters/driven/worker/process"
	"github.com/bindery-labs/bindery-cli/internal/adapters/driving/cli"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
	"github.com/bindery-labs/bindery-cli/internal/core/services"
	"github.com/bindery-labs/bindery-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Settings fall back to an in-memory store when the config
	// directory is unusable; the session still works, nothing
	// persists.
	var configStore driven.ConfigStore
	if store, err := file.NewConfigStore(""); err != nil {
		logger.Warn("config store unavailable, settings will not persist: %v", err)
		configStore = memory.NewConfigStore()
	} else {
		configStore = store
	}
	settings := services.NewSettings(configStore)

	var jobStore driven.JobStore
	if store, err := sqlite.NewJobStore(""); err != nil {
		logger.Warn("job store unavailable, history will not persist: %v", err)
		jobStore = memory.NewJobStore()
	} else {
		jobStore = store
		defer store.Close()
	}
	history := services.NewHistory(jobStore)

	current, err := settings.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	worker := process.New(current.Worker.Binary)

	session := services.NewSession(worker, settings, history)

	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		Session:  session,
		Preview:  services.NewPreview(session),
		Settings: settings,
		History:  history,
	})

	return cli.Execute()
}
