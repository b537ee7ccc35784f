// Command closeout matches required project documents to the closeout archive.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/closeout/internal/adapters/driven/config/file"
	"github.com/custodia-labs/closeout/internal/adapters/driven/reference"
	"github.com/custodia-labs/closeout/internal/adapters/driven/report"
	"github.com/custodia-labs/closeout/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/closeout/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/closeout/internal/adapters/driven/tracker"
	"github.com/custodia-labs/closeout/internal/adapters/driving/cli"
	"github.com/custodia-labs/closeout/internal/connectors/filesystem"
	"github.com/custodia-labs/closeout/internal/core/ports/driven"
	"github.com/custodia-labs/closeout/internal/core/services"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A missing .env is normal.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cli.SetVersion(version)
	err := cli.Execute(ctx, wire)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// wire builds the adapters and services for one command invocation.
func wire(opts cli.Options) (*cli.Services, func(), error) {
	configStore, err := file.NewConfigStore(opts.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, nil, err
	}

	var runStore driven.RunStore
	cleanup := func() {}
	if settings.History.Enabled {
		home, _ := os.UserHomeDir()
		store, err := sqlite.NewStore(filesystem.ResolveRoot(settings.History.DataDir, home))
		if err != nil {
			return nil, nil, fmt.Errorf("opening run history: %w", err)
		}
		runStore = store.RunStore()
		cleanup = func() { _ = store.Close() }
	} else {
		runStore = memory.NewRunStore()
	}

	return &cli.Services{
		Match:           services.NewMatchService(filesystem.Factory{}, runStore),
		Inventory:       services.NewInventoryService(filesystem.NewScanner()),
		History:         services.NewHistoryService(runStore),
		Reference:       services.NewReferenceService(reference.NewSource()),
		Settings:        settingsService,
		Tracker:         tracker.NewStore(),
		Reports:         report.DefaultRegistry(),
		InventoryWriter: report.InventoryCSV{},
	}, cleanup, nil
}
