package main

import (
	"flag"
	"log"

	"maths_point_backend/internal/app"
	"maths_point_backend/internal/config"
	"maths_point_backend/pkg/configwatcher"
	"maths_point_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	watch := flag.Bool("watch-config", false, "reload configuration when configs/config.yaml changes")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// Migrations run during app init; nothing left to do in migrate-only mode.
	if *migrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	if *watch {
		go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
			application.Config.ApplyHotReload(newCfg)
			logger.Log.Info("Configuration reloaded")
		})
	}

	application.Run()
}
