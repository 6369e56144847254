package api

import (
	"errors"
	"net/http"

	resdto "pixelboard/internal/handler/dto/response"
	"pixelboard/internal/handler/httperr"
	"pixelboard/internal/usecase/commands"
	"pixelboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SnapshotHandler struct {
	cmds commands.SnapshotCommands
	q    queries.SnapshotQueries
}

func NewSnapshotHandler(cmds commands.SnapshotCommands, q queries.SnapshotQueries) *SnapshotHandler {
	return &SnapshotHandler{cmds: cmds, q: q}
}

// @Summary Capture the weekly snapshot
// @Description Cron-triggered; renders and stores a PNG of the canvas on the snapshot day, reports skipped otherwise
// @Tags snapshots
// @Produce json
// @Success 200 {object} resdto.CaptureSnapshotResponse "Off-schedule, skipped"
// @Success 201 {object} resdto.CaptureSnapshotResponse
// @Failure 500 {object} map[string]string
// @Router /canvas/snapshots [post]
func (h *SnapshotHandler) Capture(c *gin.Context) {
	result, err := h.cmds.CaptureWeeklySnapshot(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to capture snapshot", nil)
		return
	}

	// Off-schedule is a normal outcome, not an error: 200 with skipped=true
	// so the scheduler can tell "ran, wrong day" from "ran and captured".
	status := http.StatusCreated
	if result.Skipped {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromCaptureResult(result))
}

// @Summary Get the current snapshot
// @Description The most recently captured snapshot
// @Tags snapshots
// @Produce json
// @Success 200 {object} resdto.SnapshotResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /canvas/snapshots/current [get]
func (h *SnapshotHandler) GetCurrent(c *gin.Context) {
	view, err := h.q.GetCurrentSnapshot(c.Request.Context())
	if err != nil {
		if errors.Is(err, queries.ErrSnapshotNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No snapshot captured yet", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load snapshot", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSnapshotView(view))
}
