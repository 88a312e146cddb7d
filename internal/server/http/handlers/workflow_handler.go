package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/stitchmate/stitchmate/internal/domain/errors"
	"github.com/stitchmate/stitchmate/internal/server/http/dto"
	"github.com/stitchmate/stitchmate/internal/session"
)

// WorkflowHandler exposes the per-customer design session.
type WorkflowHandler struct {
	facade WorkflowFacade
}

// NewWorkflowHandler constructs WorkflowHandler.
func NewWorkflowHandler(facade WorkflowFacade) *WorkflowHandler {
	return &WorkflowHandler{facade: facade}
}

func workflowStateResponse(state WorkflowState) dto.WorkflowStateResponse {
	resp := dto.WorkflowStateResponse{
		Step:        string(state.Step),
		Fabric:      state.Fabric,
		Designs:     dto.NewDesignResponses(state.Designs),
		Accessories: dto.NewAccessoryResponses(state.Accessories),
		UserImage:   state.UserImage,
	}
	if state.Analysis != nil {
		analysis := dto.NewFabricAnalysisResponse(*state.Analysis)
		resp.Analysis = &analysis
	}
	if state.SelectedDesign != nil {
		design := dto.NewDesignResponse(*state.SelectedDesign)
		resp.SelectedDesign = &design
	}
	return resp
}

// State handles GET /api/user/workflow.
func (h *WorkflowHandler) State(c *gin.Context) {
	state := h.facade.WorkflowState(CurrentUserID(c))
	c.JSON(http.StatusOK, workflowStateResponse(state))
}

// SetStep handles PUT /api/user/workflow/step.
func (h *WorkflowHandler) SetStep(c *gin.Context) {
	var req dto.WorkflowStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetWorkflowStep(CurrentUserID(c), session.WorkflowStep(req.Step)); err != nil {
		c.Status(http.StatusUnprocessableEntity)
		return
	}
	c.Status(http.StatusOK)
}

// Reset handles POST /api/user/workflow/reset. Posted orders survive the
// reset.
func (h *WorkflowHandler) Reset(c *gin.Context) {
	h.facade.ResetWorkflow(CurrentUserID(c))
	c.Status(http.StatusOK)
}

// AddAccessory handles POST /api/user/workflow/accessories.
func (h *WorkflowHandler) AddAccessory(c *gin.Context) {
	var req dto.AddAccessoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	selected, err := h.facade.AddAccessory(c.Request.Context(), CurrentUserID(c), req.AccessoryID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewAccessoryResponses(selected))
}

// RemoveAccessory handles DELETE /api/user/workflow/accessories/:id.
func (h *WorkflowHandler) RemoveAccessory(c *gin.Context) {
	id, ok := parseInt64Param(c, "id")
	if !ok {
		return
	}
	selected := h.facade.RemoveAccessory(CurrentUserID(c), id)
	c.JSON(http.StatusOK, dto.NewAccessoryResponses(selected))
}

// TryOn handles POST /api/user/workflow/tryon.
func (h *WorkflowHandler) TryOn(c *gin.Context) {
	var req dto.TryOnRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Image == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	image, err := h.facade.TryOn(c.Request.Context(), CurrentUserID(c), req.Image)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusConflict)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.TryOnResponse{Image: image})
}
