package ui

import (
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neonicons/internal/config"
)

func TestSettingsApply(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	cfg := config.Default()
	s := NewSettingsDialog(a, cfg, "")
	s.Show()

	assert.Equal(t, cfg.AndroidResDir, s.androidEntry.Text)

	s.androidEntry.SetText("out/android")
	s.manifestEntry.SetText("icons.db")
	require.NoError(t, s.apply())
	assert.Equal(t, "out/android", cfg.AndroidResDir)
	assert.Equal(t, "icons.db", cfg.ManifestPath)

	s.iosEntry.SetText("")
	assert.Error(t, s.apply())
}

func TestSettingsSaveRoundTrip(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	path := filepath.Join(t.TempDir(), "icongen.json")
	cfg := config.Default()
	s := NewSettingsDialog(a, cfg, path)
	s.Show()

	s.icoEntry.SetText("build/app.ico")
	require.NoError(t, s.apply())
	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "build/app.ico", loaded.ICOPath)
}

func TestSettingsGenerateCallsBack(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	got := make(chan *config.Config, 1)
	s := NewSettingsDialog(a, config.Default(), "")
	s.SetGeneration(NewGeneration(func(c *config.Config) error {
		got <- c
		return nil
	}))
	s.Show()
	s.iosEntry.SetText("out/ios")

	s.generate()

	select {
	case c := <-got:
		assert.Equal(t, "out/ios", c.IOSAppIconSetDir)
	case <-time.After(5 * time.Second):
		t.Fatal("generate callback not called")
	}
}

func TestSettingsGenerateRefusedWhileRunning(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	var calls atomic.Int32
	release := make(chan struct{})
	gen := NewGeneration(func(*config.Config) error {
		calls.Add(1)
		<-release
		return nil
	})

	// a tray run holds the generation
	require.NoError(t, gen.Start(config.Default(), nil))

	s := NewSettingsDialog(a, config.Default(), "")
	s.SetGeneration(gen)
	s.Show()

	s.generate()
	assert.Equal(t, "Already generating", s.status.Text)
	assert.False(t, s.generateBtn.Disabled())

	close(release)
	require.Eventually(t, func() bool { return !gen.Running() }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}
