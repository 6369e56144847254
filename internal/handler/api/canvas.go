package api

import (
	"errors"
	"net/http"

	"pixelboard/internal/domain/canvas"
	reqdto "pixelboard/internal/handler/dto/request"
	resdto "pixelboard/internal/handler/dto/response"
	"pixelboard/internal/handler/httperr"
	"pixelboard/internal/usecase/commands"
	"pixelboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CanvasHandler struct {
	cmds commands.CanvasCommands
	q    queries.CanvasQueries
}

func NewCanvasHandler(cmds commands.CanvasCommands, q queries.CanvasQueries) *CanvasHandler {
	return &CanvasHandler{cmds: cmds, q: q}
}

// @Summary Place a pixel
// @Description Write one cell of the shared canvas, subject to the per-user cooldown
// @Tags canvas
// @Accept json
// @Produce json
// @Param request body reqdto.PlacePixelRequest true "Place pixel request"
// @Success 201 {object} resdto.PlacePixelResponse
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /canvas/pixels [post]
func (h *CanvasHandler) PlacePixel(c *gin.Context) {
	var req reqdto.PlacePixelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.PlacePixel(c.Request.Context(), commands.PlacePixelRequest{
		X:        *req.X,
		Y:        *req.Y,
		Color:    req.Color,
		Username: req.Username,
	}, req.UserID)
	if err != nil {
		var cooldownErr *commands.CooldownActiveError
		switch {
		case errors.As(err, &cooldownErr):
			httperr.AbortWithError(c, http.StatusTooManyRequests, err, "Cooldown active", gin.H{
				"remaining_seconds": cooldownErr.RemainingSeconds(),
				"remaining_minutes": cooldownErr.RemainingMinutes(),
			})
		case canvas.IsValidationError(err):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid placement", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to place pixel", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPlaceResult(result))
}

// @Summary Get the canvas
// @Description Current grid state plus aggregate stats
// @Tags canvas
// @Produce json
// @Success 200 {object} resdto.CanvasResponse
// @Failure 500 {object} map[string]string
// @Router /canvas [get]
func (h *CanvasHandler) GetCanvas(c *gin.Context) {
	view, err := h.q.GetCanvas(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load canvas", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCanvasView(view))
}

// @Summary Get cooldown status
// @Description Whether the user may place right now; advisory only
// @Tags canvas
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} resdto.CooldownStatusResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /canvas/cooldown/{user_id} [get]
func (h *CanvasHandler) GetCooldownStatus(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return
	}
	view, err := h.q.GetCooldownStatus(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cooldown status", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCooldownStatus(view))
}
