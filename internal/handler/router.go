package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pixelboard/internal/handler/api"
	"pixelboard/internal/handler/middleware"
	"pixelboard/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, canvasHandler *api.CanvasHandler, snapshotHandler *api.SnapshotHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, canvasHandler, snapshotHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, canvasHandler *api.CanvasHandler, snapshotHandler *api.SnapshotHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		canvasGroup := apiGroup.Group("/canvas")
		{
			addRoutes(canvasGroup, []route{
				{Method: http.MethodGet, Path: "", Handler: canvasHandler.GetCanvas},
				{Method: http.MethodPost, Path: "/pixels", Handler: canvasHandler.PlacePixel},
				{Method: http.MethodGet, Path: "/cooldown/:user_id", Handler: canvasHandler.GetCooldownStatus},
				{Method: http.MethodPost, Path: "/snapshots", Handler: snapshotHandler.Capture},
				{Method: http.MethodGet, Path: "/snapshots/current", Handler: snapshotHandler.GetCurrent},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
