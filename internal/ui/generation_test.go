package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neonicons/internal/config"
)

func TestGenerationOneRunAtATime(t *testing.T) {
	release := make(chan struct{})
	gen := NewGeneration(func(*config.Config) error {
		<-release
		return nil
	})

	require.NoError(t, gen.Start(config.Default(), nil))
	assert.True(t, gen.Running())
	assert.ErrorIs(t, gen.Start(config.Default(), nil), ErrGenerationRunning)

	close(release)
	require.Eventually(t, func() bool { return !gen.Running() }, 5*time.Second, 10*time.Millisecond)
	assert.NoError(t, gen.Start(config.Default(), nil))
}

func TestGenerationRunsOnSnapshot(t *testing.T) {
	got := make(chan string, 1)
	release := make(chan struct{})
	gen := NewGeneration(func(c *config.Config) error {
		<-release
		got <- c.AndroidResDir
		return nil
	})

	cfg := config.Default()
	cfg.AndroidResDir = "before"
	require.NoError(t, gen.Start(cfg, nil))
	cfg.AndroidResDir = "after"
	close(release)

	select {
	case dir := <-got:
		assert.Equal(t, "before", dir)
	case <-time.After(5 * time.Second):
		t.Fatal("run not called")
	}
}
