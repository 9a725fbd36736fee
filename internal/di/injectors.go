//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"laleme/internal"
	"laleme/internal/backup"
	"laleme/internal/controllers"
	"laleme/internal/providers"
	"laleme/internal/services"
	"laleme/internal/storage"
	"laleme/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		storage.NewZstdCompressor,
		storage.NewKeyValueStore,
		services.NewClock,
		services.NewJournalService,
		services.NewPeerSource,
		services.NewSummaryService,
		backup.NewBackupManager,
		backup.NewScheduler,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewHandler,
		internal.NewApp,
	)

	return nil, nil
}
