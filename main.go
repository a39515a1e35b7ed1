package main

import (
	"flag"
	"log"
	"os"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"

	iconapp "neonicons/internal/app"
	"neonicons/internal/assets"
	"neonicons/internal/config"
	"neonicons/internal/logging"
	"neonicons/internal/palette"
	"neonicons/internal/render"
	"neonicons/internal/ui"
)

// main opens a window previewing every icon slot. Icons are only written
// when requested from the output settings; cmd/icongen writes them headless.
func main() {
	configPath := flag.String("config", "icongen.json", "JSON config file used by the settings window")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Application error: %v", err)
	}
	logger, err := logging.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Application error: %v", err)
	}

	a := app.NewWithID("com.neonpulse.icons")
	a.Settings().SetTheme(theme.DarkTheme())

	icon, err := assets.AppIcon()
	if err != nil {
		log.Fatalf("Application error: %v", err)
	}
	a.SetIcon(icon)

	settings := ui.NewSettingsDialog(a, cfg, *configPath)
	gen := ui.NewGeneration(func(c *config.Config) error {
		return iconapp.Generate(c, logger)
	})
	settings.SetGeneration(gen)

	tray := ui.NewTrayManager(a, icon)
	tray.SetCallbacks(
		settings.Show,
		func() {
			err := gen.Start(cfg, func(err error) {
				if err != nil {
					logger.Error().Err(err).Msg("Error generating icons")
					tray.SetStatus("Icons: failed")
					return
				}
				tray.SetStatus("Icons: generated")
			})
			if err != nil {
				logger.Warn().Err(err).Msg("Generate ignored")
				return
			}
			tray.SetStatus("Icons: generating...")
		},
		a.Quit,
	)
	if err := tray.Setup(); err != nil {
		log.Printf("Warning: System tray setup failed: %v", err)
	}

	preview := ui.NewPreviewWindow(a, render.New(palette.Neon))
	preview.SetSettings(settings)
	if err := preview.Setup(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
	preview.ShowAndRun()
}
