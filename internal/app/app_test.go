package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neonicons/internal/config"
	"neonicons/internal/iconset"
	"neonicons/internal/manifest"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	ios := filepath.Join(root, "ios", "AppIcon.appiconset")
	require.NoError(t, os.MkdirAll(ios, 0755))

	cfg := config.Default()
	cfg.AndroidResDir = filepath.Join(root, "android", "res")
	cfg.IOSAppIconSetDir = ios
	return cfg
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(dir, func(_ string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	require.NoError(t, err)
	return n
}

func TestGenerateWritesBothPlatforms(t *testing.T) {
	cfg := testConfig(t)
	var logs bytes.Buffer

	require.NoError(t, Generate(cfg, zerolog.New(&logs)))

	assert.Equal(t, 15, countFiles(t, cfg.AndroidResDir))
	assert.Equal(t, 15, countFiles(t, cfg.IOSAppIconSetDir))

	out := logs.String()
	assert.Less(t, strings.Index(out, "Generated Android"), strings.Index(out, "Generated iOS"))
	assert.Contains(t, out, "All icons generated successfully!")
}

func TestRunReportsFailureOnce(t *testing.T) {
	cfg := testConfig(t)
	blocker := filepath.Join(t.TempDir(), "res")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	cfg.AndroidResDir = blocker

	var logs bytes.Buffer
	assert.NotPanics(t, func() {
		Run(cfg, zerolog.New(&logs))
	})

	out := logs.String()
	assert.Equal(t, 1, strings.Count(out, "Error generating icons"))
	assert.NotContains(t, out, "Generated")
	assert.NotContains(t, out, "successfully")
	assert.Equal(t, 0, countFiles(t, cfg.IOSAppIconSetDir))
}

func TestGenerateMissingIOSDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.IOSAppIconSetDir = filepath.Join(t.TempDir(), "missing")

	err := Generate(cfg, zerolog.Nop())
	require.Error(t, err)
	assert.True(t, iconset.IsIOFailure(err))
	assert.Contains(t, err.Error(), "ios icons")
}

func TestGenerateWithManifestAndICO(t *testing.T) {
	cfg := testConfig(t)
	cfg.ManifestPath = filepath.Join(t.TempDir(), "manifest.db")
	cfg.ICOPath = filepath.Join(t.TempDir(), "app.ico")

	var logs bytes.Buffer
	require.NoError(t, Generate(cfg, zerolog.New(&logs)))
	require.NoError(t, Generate(cfg, zerolog.New(&logs)))

	assert.NotContains(t, logs.String(), "differs from previous run")
	_, err := os.Stat(cfg.ICOPath)
	require.NoError(t, err)

	store, err := manifest.Open(cfg.ManifestPath)
	require.NoError(t, err)
	defer store.Close()

	files, err := store.Files(2)
	require.NoError(t, err)
	assert.Len(t, files, 31)

	changed, err := store.Changed(2)
	require.NoError(t, err)
	assert.Empty(t, changed)
}
