// Command drills runs the greeter, calculator and sentence exercises.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"

	"github.com/custodia-labs/drills/internal/adapters/driven/config/file"
	"github.com/custodia-labs/drills/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/drills/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/drills/internal/adapters/driving/cli"
	"github.com/custodia-labs/drills/internal/core/ports/driven"
	"github.com/custodia-labs/drills/internal/core/services"
	"github.com/custodia-labs/drills/internal/logger"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func bootstrap(opts cli.Options) (*cli.Services, error) {
	var (
		config  driven.ConfigStore
		history driven.HistoryStore
		closeFn func() error
	)

	if opts.Ephemeral {
		logger.Debug("using in-memory stores")
		config = memory.NewConfigStore()
		history = memory.NewHistoryStore()
	} else {
		configFile, err := file.NewConfigStore(opts.ConfigDir)
		if err != nil {
			return nil, fmt.Errorf("opening config: %w", err)
		}
		store, err := sqlite.NewStore(filepath.Join(filepath.Dir(configFile.Path()), "data"))
		if err != nil {
			return nil, fmt.Errorf("opening history: %w", err)
		}
		logger.Debug("config %s, history %s", configFile.Path(), store.Path())
		config = configFile
		history = store.HistoryStore()
		closeFn = store.Close
	}

	settings := services.NewSettingsService(config)
	return &cli.Services{
		Calculator:  services.NewCalculatorService(settings, history),
		Greeter:     services.NewGreeterService(),
		Manipulator: services.NewManipulatorService(),
		History:     services.NewHistoryService(history),
		Settings:    settings,
		Config:      config,
		Close:       closeFn,
	}, nil
}
