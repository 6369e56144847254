package components

import (
	"pixelboard/internal/handler"
	"pixelboard/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCanvasHandler,
		api.NewSnapshotHandler,
	),
	fx.Invoke(handler.NewRouter),
)
