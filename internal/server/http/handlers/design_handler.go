package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/stitchmate/stitchmate/internal/domain/errors"
	"github.com/stitchmate/stitchmate/internal/domain/model"
	"github.com/stitchmate/stitchmate/internal/server/http/dto"
)

// DesignHandler covers mockup generation and selection.
type DesignHandler struct {
	facade DesignFacade
}

// NewDesignHandler constructs DesignHandler.
func NewDesignHandler(facade DesignFacade) *DesignHandler {
	return &DesignHandler{facade: facade}
}

// Generate handles POST /api/user/designs/generate.
func (h *DesignHandler) Generate(c *gin.Context) {
	var req dto.GenerateDesignsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	designs, err := h.facade.GenerateDesigns(c.Request.Context(), CurrentUserID(c), model.DesignStyle(req.Style))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			// Fabric must be analyzed first.
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrInsufficientFabric):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewDesignResponses(designs))
}

// Select handles POST /api/user/designs/select.
func (h *DesignHandler) Select(c *gin.Context) {
	var req dto.SelectDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SelectDesign(CurrentUserID(c), req.DesignID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}
