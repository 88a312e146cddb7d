package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/stitchmate/stitchmate/internal/domain/errors"
	"github.com/stitchmate/stitchmate/internal/server/http/dto"
)

// maxFabricUploadSize caps fabric photo uploads at 10 MiB.
const maxFabricUploadSize = 10 << 20

// FabricHandler covers fabric photo upload and analysis.
type FabricHandler struct {
	facade FabricFacade
}

// NewFabricHandler constructs FabricHandler.
func NewFabricHandler(facade FabricFacade) *FabricHandler {
	return &FabricHandler{facade: facade}
}

// Upload handles POST /api/user/fabric (multipart form, field "fabric").
func (h *FabricHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxFabricUploadSize)

	file, header, err := c.Request.FormFile("fabric")
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	ref, err := h.facade.UploadFabric(c.Request.Context(), CurrentUserID(c), header.Filename, contentType, file)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.FabricUploadResponse{Fabric: ref})
}

// Analyze handles POST /api/user/fabric/analyze.
func (h *FabricHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeFabricRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	analysis, err := h.facade.AnalyzeFabric(c.Request.Context(), CurrentUserID(c), req.Instructions)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			// No fabric uploaded yet.
			c.Status(http.StatusConflict)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, dto.NewFabricAnalysisResponse(*analysis))
}
