package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"filescope/internal/config"
	"filescope/internal/services"
	"filescope/internal/store"
	"filescope/internal/store/primary"
	"filescope/pkg/classifier"
)

// App wires configuration, the classification engine, the scan store and
// the services the commands use.
type App struct {
	Config      *config.Config
	Engine      *classifier.Engine
	ScanStore   store.ScanStore
	ScanService *services.ScanService
}

func NewApp(cfg *config.Config) (*App, error) {
	app := &App{
		Config: cfg,
		Engine: classifier.New(),
	}

	if err := app.initScanStore(); err != nil {
		return nil, err
	}
	app.ScanService = services.NewScanService(app.Engine, app.ScanStore)

	log.Debug("application initialization complete")
	return app, nil
}

func (a *App) initScanStore() error {
	scanStore, err := primary.NewScanStore(context.Background(), a.Config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize scan store: %w", err)
	}
	a.ScanStore = scanStore
	return nil
}

// Close releases held resources.
func (a *App) Close() {
	if a.ScanStore != nil {
		if err := a.ScanStore.Close(); err != nil {
			log.Warnf("closing scan store: %v", err)
		}
	}
}
