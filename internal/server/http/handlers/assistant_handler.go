package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stitchmate/stitchmate/internal/adapter/assistant"
	"github.com/stitchmate/stitchmate/internal/server/http/dto"
)

// AssistantHandler answers styling questions through the in-app assistant.
type AssistantHandler struct {
	facade AssistantFacade
}

// NewAssistantHandler constructs AssistantHandler.
func NewAssistantHandler(facade AssistantFacade) *AssistantHandler {
	return &AssistantHandler{facade: facade}
}

// Ask handles POST /api/user/assistant.
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req dto.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	reply, err := h.facade.Assistant(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, assistant.ErrEmptyMessage) {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.AssistantResponse{Reply: reply.Content, Positive: reply.Positive})
}
