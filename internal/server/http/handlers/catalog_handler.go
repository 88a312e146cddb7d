package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stitchmate/stitchmate/internal/server/http/dto"
)

// CatalogHandler serves the accessories catalog and tailor directory.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Accessories handles GET /api/user/accessories?category=.
func (h *CatalogHandler) Accessories(c *gin.Context) {
	items, err := h.facade.Accessories(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewAccessoryResponses(items))
}

// Tailors handles GET /api/user/tailors.
func (h *CatalogHandler) Tailors(c *gin.Context) {
	tailors, err := h.facade.TailorDirectory(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewTailorSummaries(tailors))
}
