package main

import (
	"context"
	"flag"
	"log"
	"nextlevel_lms/internal/app"
	"nextlevel_lms/internal/config"
	"nextlevel_lms/pkg/configwatcher"
	"nextlevel_lms/pkg/logger"
	"path/filepath"

	"go.uber.org/zap"
)

func main() {
	configDir := flag.String("config", "configs", "directory holding config.yaml and .env")
	watch := flag.Bool("watch-config", true, "reload config.yaml when it changes")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *watch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			path := filepath.Join(*configDir, "config.yaml")
			if err := configwatcher.WatchConfig(ctx, path, application.ReloadConfig); err != nil {
				logger.Log.Warn("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	application.Run()
}
