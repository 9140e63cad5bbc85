package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ierr "github.com/stagebill/stagebill/internal/errors"
	"github.com/stagebill/stagebill/internal/logger"
	"github.com/stagebill/stagebill/internal/service"
)

type PlayHandler struct {
	service service.PlayService
	log     *logger.Logger
}

func NewPlayHandler(service service.PlayService, log *logger.Logger) *PlayHandler {
	return &PlayHandler{
		service: service,
		log:     log,
	}
}

// @Summary Get a play
// @Description Get a catalog play by ID
// @Tags Plays
// @Produce json
// @Param id path string true "Play ID"
// @Success 200 {object} dto.PlayResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /plays/{id} [get]
func (h *PlayHandler) GetPlay(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("play ID is required").
			WithHint("Play ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetPlay(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List plays
// @Description List all plays in the catalog
// @Tags Plays
// @Produce json
// @Success 200 {object} dto.ListPlaysResponse
// @Router /plays [get]
func (h *PlayHandler) ListPlays(c *gin.Context) {
	resp, err := h.service.ListPlays(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
