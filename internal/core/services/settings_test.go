package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bindery-labs/bindery-cli/internal/adapters/driven/storage/memory"
	"github.com/bindery-labs/bindery-cli/internal/core/domain"
)

func TestSettings_GetDefaults(t *testing.T) {
	svc := NewSettings(memory.NewConfigStore())

	settings, err := svc.Get()
	require.NoError(t, err)

	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Output.Directory, settings.Output.Directory)
	assert.Equal(t, defaults.Worker.Binary, settings.Worker.Binary)
	assert.Equal(t, defaults.Worker.TimeoutSeconds, settings.Worker.TimeoutSeconds)
	assert.False(t, settings.Watch.Enabled)
}

func TestSettings_StoreOverridesDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set("output.directory", "/custom/out"))
	require.NoError(t, store.Set("output.name_prefix", "scan-"))
	require.NoError(t, store.Set("worker.timeout_seconds", 30))
	svc := NewSettings(store)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "/custom/out", settings.Output.Directory)
	assert.Equal(t, "scan-", settings.Output.NamePrefix)
	assert.Equal(t, 30, settings.Worker.TimeoutSeconds)
	// Untouched keys keep their defaults.
	assert.Equal(t, domain.DefaultAppSettings().Worker.Binary, settings.Worker.Binary)
}

func TestSettings_SaveRoundTrip(t *testing.T) {
	store := memory.NewConfigStore()
	svc := NewSettings(store)

	settings := domain.DefaultAppSettings()
	settings.Output.Directory = "/elsewhere"
	settings.Output.NameSuffix = "-merged"
	settings.Watch.Enabled = true
	settings.Watch.Directory = "/inbox"
	require.NoError(t, svc.Save(settings))

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "/elsewhere", got.Output.Directory)
	assert.Equal(t, "-merged", got.Output.NameSuffix)
	assert.True(t, got.Watch.Enabled)
	assert.Equal(t, "/inbox", got.Watch.Directory)
}

func TestSettings_SetOutputDirectory(t *testing.T) {
	svc := NewSettings(memory.NewConfigStore())

	require.NoError(t, svc.SetOutputDirectory("/out"))
	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "/out", settings.Output.Directory)

	err = svc.SetOutputDirectory("")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettings_SetNameAffixes(t *testing.T) {
	svc := NewSettings(memory.NewConfigStore())

	require.NoError(t, svc.SetNameAffixes("2024-", "-final"))
	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "2024-", settings.Output.NamePrefix)
	assert.Equal(t, "-final", settings.Output.NameSuffix)

	// Clearing affixes back to empty must stick, not fall back to
	// defaults.
	require.NoError(t, svc.SetNameAffixes("", ""))
	settings, err = svc.Get()
	require.NoError(t, err)
	assert.Empty(t, settings.Output.NamePrefix)
	assert.Empty(t, settings.Output.NameSuffix)
}

func TestSettings_SetWorkerBinary(t *testing.T) {
	svc := NewSettings(memory.NewConfigStore())

	require.NoError(t, svc.SetWorkerBinary("/usr/local/bin/bindery-worker"))
	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/bindery-worker", settings.Worker.Binary)

	require.ErrorIs(t, svc.SetWorkerBinary(""), domain.ErrInvalidInput)
}

func TestSettings_SetWatch(t *testing.T) {
	svc := NewSettings(memory.NewConfigStore())

	require.ErrorIs(t, svc.SetWatch(true, ""), domain.ErrInvalidInput)

	require.NoError(t, svc.SetWatch(true, "/inbox"))
	settings, err := svc.Get()
	require.NoError(t, err)
	assert.True(t, settings.Watch.Enabled)
	assert.Equal(t, "/inbox", settings.Watch.Directory)

	require.NoError(t, svc.SetWatch(false, "/inbox"))
	settings, err = svc.Get()
	require.NoError(t, err)
	assert.False(t, settings.Watch.Enabled)
}

func TestSettings_NilStore(t *testing.T) {
	svc := NewSettings(nil)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), settings)
}
