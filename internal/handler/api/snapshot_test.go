//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"pixelboard/internal/handler/api"
	resdto "pixelboard/internal/handler/dto/response"
	"pixelboard/internal/usecase/commands"
	"pixelboard/internal/usecase/queries"
	"pixelboard/tests/common/httptest"
	commandsmock "pixelboard/tests/mock/commands"
	queriesmock "pixelboard/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SnapshotHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSnapshotCommands
	mockQueries  *queriesmock.MockSnapshotQueries
	handler      *api.SnapshotHandler
}

func (s *SnapshotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSnapshotCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSnapshotQueries(s.mockCtrl)
	s.handler = api.NewSnapshotHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/canvas/snapshots", s.handler.Capture)
	s.router.GET("/api/canvas/snapshots/current", s.handler.GetCurrent)
}

func (s *SnapshotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSnapshotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SnapshotHandlerTestSuite))
}

// ================================================================================
// TestCapture
// ================================================================================

func (s *SnapshotHandlerTestSuite) TestCapture() {
	url := "/api/canvas/snapshots"

	s.Run("success: returns 201 Created when a snapshot is stored", func() {
		result := &commands.CaptureResult{SnapshotID: uuid.New(), Week: "2026-W07"}
		s.mockCommands.EXPECT().CaptureWeeklySnapshot(gomock.Any()).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var body resdto.CaptureSnapshotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.False(body.Skipped)
		s.Equal(result.SnapshotID, body.SnapshotID)
		s.Equal("2026-W07", body.Week)
	})

	s.Run("success: returns 200 OK when the run is off-schedule", func() {
		result := &commands.CaptureResult{Skipped: true, Week: "2026-W08"}
		s.mockCommands.EXPECT().CaptureWeeklySnapshot(gomock.Any()).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var body resdto.CaptureSnapshotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Skipped)
		s.Equal(uuid.Nil, body.SnapshotID)
		s.Equal("2026-W08", body.Week)
	})

	s.Run("error: 500 Internal Server Error on capture failure", func() {
		s.mockCommands.EXPECT().CaptureWeeklySnapshot(gomock.Any()).
			Return(nil, errors.New("render failed")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to capture snapshot")
	})
}

// ================================================================================
// TestGetCurrent
// ================================================================================

func (s *SnapshotHandlerTestSuite) TestGetCurrent() {
	url := "/api/canvas/snapshots/current"

	s.Run("success: returns the newest snapshot", func() {
		view := &queries.SnapshotView{
			ID:        uuid.New(),
			Week:      "2026-W07",
			Image:     []byte{0x89, 0x50, 0x4E, 0x47},
			CreatedAt: time.Date(2026, 2, 15, 23, 59, 0, 0, time.UTC),
		}
		s.mockQueries.EXPECT().GetCurrentSnapshot(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.SnapshotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("2026-W07", body.Week)
		s.Equal(view.Image, body.Image, "image must round-trip through base64")
	})

	s.Run("error: 404 Not Found before the first capture", func() {
		s.mockQueries.EXPECT().GetCurrentSnapshot(gomock.Any()).
			Return(nil, queries.ErrSnapshotNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No snapshot captured yet")
	})

	s.Run("error: 500 Internal Server Error on store failure", func() {
		s.mockQueries.EXPECT().GetCurrentSnapshot(gomock.Any()).
			Return(nil, errors.New("db gone")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load snapshot")
	})
}
