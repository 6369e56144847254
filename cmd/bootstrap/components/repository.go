package components

import (
	"pixelboard/internal/infra/db"
	"pixelboard/internal/infra/readstore"
	"pixelboard/internal/infra/uow"
	"pixelboard/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,
		func(pool *pgxpool.Pool) db.DBTX { return pool },
		fx.Annotate(
			func(dbtx db.DBTX) *readstore.CanvasReadStore { return readstore.NewCanvasReadStore(dbtx) },
			fx.As(new(queries.CanvasReadStore)),
		),
		fx.Annotate(
			func(dbtx db.DBTX) *readstore.SnapshotReadStore { return readstore.NewSnapshotReadStore(dbtx) },
			fx.As(new(queries.SnapshotReadStore)),
		),
	),
)
