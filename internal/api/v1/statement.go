package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stagebill/stagebill/internal/api/dto"
	ierr "github.com/stagebill/stagebill/internal/errors"
	"github.com/stagebill/stagebill/internal/logger"
	"github.com/stagebill/stagebill/internal/service"
)

type StatementHandler struct {
	service service.StatementService
	log     *logger.Logger
}

func NewStatementHandler(service service.StatementService, log *logger.Logger) *StatementHandler {
	return &StatementHandler{
		service: service,
		log:     log,
	}
}

// @Summary Render a statement
// @Description Compute and render a statement for a customer invoice
// @Tags Statements
// @Accept json
// @Produce json
// @Param statement body dto.CreateStatementRequest true "Invoice to render"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 422 {object} ierr.ErrorResponse
// @Router /statements [post]
func (h *StatementHandler) CreateStatement(c *gin.Context) {
	var req dto.CreateStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateStatement(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
