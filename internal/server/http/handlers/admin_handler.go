package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/stitchmate/stitchmate/internal/domain/errors"
	"github.com/stitchmate/stitchmate/internal/server/http/dto"
)

// AdminHandler covers tailor application review.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Applications handles GET /api/admin/applications.
func (h *AdminHandler) Applications(c *gin.Context) {
	apps, err := h.facade.PendingApplications(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewApplicationResponses(apps))
}

// Approve handles POST /api/admin/applications/:id/approve.
func (h *AdminHandler) Approve(c *gin.Context) {
	if err := h.facade.ApproveApplication(c.Request.Context(), c.Param("id")); err != nil {
		h.reviewErrorStatus(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Reject handles POST /api/admin/applications/:id/reject.
func (h *AdminHandler) Reject(c *gin.Context) {
	if err := h.facade.RejectApplication(c.Request.Context(), c.Param("id")); err != nil {
		h.reviewErrorStatus(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *AdminHandler) reviewErrorStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrAlreadyReviewed):
		c.Status(http.StatusConflict)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
