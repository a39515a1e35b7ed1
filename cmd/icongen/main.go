// Command icongen writes the Neon Pulse launcher icons for Android and iOS.
//
// Run it from the project's scripts directory with no arguments; the output
// paths default to ../android and ../ios.
package main

import (
	"flag"
	"log"
	"os"

	"neonicons/internal/app"
	"neonicons/internal/config"
	"neonicons/internal/logging"
)

func main() {
	var (
		configPath = flag.String("config", "", "optional JSON config file")
		androidRes = flag.String("android", "", "Android res directory (overrides config)")
		iosIconSet = flag.String("ios", "", "iOS AppIcon.appiconset directory (overrides config)")
		manifest   = flag.String("manifest", "", "record written files in this SQLite database")
		icoPath    = flag.String("ico", "", "also write a Windows .ico to this path")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if *androidRes != "" {
		cfg.AndroidResDir = *androidRes
	}
	if *iosIconSet != "" {
		cfg.IOSAppIconSetDir = *iosIconSet
	}
	if *manifest != "" {
		cfg.ManifestPath = *manifest
	}
	if *icoPath != "" {
		cfg.ICOPath = *icoPath
	}

	logger, err := logging.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	app.Run(cfg, logger)
}
