package app

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"neonicons/internal/config"
	"neonicons/internal/iconset"
	"neonicons/internal/manifest"
)

// Run generates every icon set and is the single error boundary: a failure
// is reported once and Run still returns normally.
func Run(cfg *config.Config, logger zerolog.Logger) {
	if err := Generate(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("Error generating icons")
		logger.Error().Msg("Make sure the output directories exist and are writable")
	}
}

// Generate writes the Android set, then the iOS set, then the optional
// Windows icon. It stops at the first error.
func Generate(cfg *config.Config, logger zerolog.Logger) (err error) {
	logger.Info().Msg("Generating Neon Pulse Flappy Bird App Icons...")
	logger.Info().Msg(strings.Repeat("=", 50))

	var opts []iconset.Option
	var store *manifest.Store
	var runID int64
	if cfg.ManifestPath != "" {
		store, err = manifest.Open(cfg.ManifestPath)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := store.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close manifest: %w", cerr)
			}
		}()
		if runID, err = store.Begin(); err != nil {
			return err
		}
		opts = append(opts, iconset.WithRecorder(store))
	}

	gen := iconset.NewGenerator(logger, opts...)

	if _, err := gen.Android(cfg.AndroidResDir); err != nil {
		return fmt.Errorf("android icons: %w", err)
	}
	if _, err := gen.IOS(cfg.IOSAppIconSetDir); err != nil {
		return fmt.Errorf("ios icons: %w", err)
	}
	if cfg.ICOPath != "" {
		if err := gen.ICO(cfg.ICOPath); err != nil {
			return fmt.Errorf("windows icon: %w", err)
		}
	}

	if store != nil {
		changed, err := store.Changed(runID)
		if err != nil {
			return err
		}
		for _, path := range changed {
			logger.Warn().Str("file", path).Msg("Icon differs from previous run")
		}
	}

	logger.Info().Msg("All icons generated successfully!")
	logger.Info().Msg("Note: Make sure to update AndroidManifest.xml and Info.plist with proper app names.")
	return nil
}
