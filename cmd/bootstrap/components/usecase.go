package components

import (
	"pixelboard/internal/pkg/clock"
	"pixelboard/internal/pkg/config"
	"pixelboard/internal/usecase/commands"
	"pixelboard/internal/usecase/queries"
	"pixelboard/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		func(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) (commands.CanvasCommands, error) {
			return commands.NewCanvasCommands(uow, clk, cfg.Canvas)
		},
		func(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) (commands.SnapshotCommands, error) {
			return commands.NewSnapshotCommands(uow, clk, cfg.Canvas)
		},
		func(store queries.CanvasReadStore, clk clock.Clock, cfg config.Config) queries.CanvasQueries {
			return queries.NewCanvasQueries(store, clk, cfg.Canvas)
		},
		queries.NewSnapshotQueries,
	),
)
