package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/stitchmate/stitchmate/internal/domain/errors"
	"github.com/stitchmate/stitchmate/internal/server/http/dto"
)

// TailorHandler covers the tailor side of the marketplace.
type TailorHandler struct {
	facade TailorFacade
}

// NewTailorHandler constructs TailorHandler.
func NewTailorHandler(facade TailorFacade) *TailorHandler {
	return &TailorHandler{facade: facade}
}

// Apply handles POST /api/user/tailor-application. Any signed-in customer
// may apply; a pending application blocks repeat submissions.
func (h *TailorHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ShopName == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	app, err := h.facade.ApplyAsTailor(c.Request.Context(), CurrentUserID(c), req.ShopName, req.Experience, req.Specialties)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			c.Status(http.StatusConflict)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, dto.NewApplicationResponse(*app))
}

// OpenOrders handles GET /api/tailor/orders.
func (h *TailorHandler) OpenOrders(c *gin.Context) {
	orders, err := h.facade.OpenOrders(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponses(orders))
}

// PlaceBid handles POST /api/tailor/orders/:id/bids.
func (h *TailorHandler) PlaceBid(c *gin.Context) {
	var req dto.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	bid, err := h.facade.PlaceBid(c.Request.Context(), CurrentUserID(c), c.Param("id"), req.Amount, req.EstimatedDays, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, dto.NewBidResponse(*bid))
}

// MyBids handles GET /api/tailor/bids.
func (h *TailorHandler) MyBids(c *gin.Context) {
	bids, err := h.facade.MyBids(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewBidResponses(bids))
}

// Earnings handles GET /api/tailor/earnings.
func (h *TailorHandler) Earnings(c *gin.Context) {
	earnings, err := h.facade.Earnings(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.EarningsResponse{
		ActiveOrders:    earnings.ActiveOrders,
		CompletedOrders: earnings.CompletedOrders,
		TotalEarned:     earnings.TotalEarned,
		PendingPayout:   earnings.PendingPayout,
	})
}

// BookedOrders handles GET /api/tailor/booked.
func (h *TailorHandler) BookedOrders(c *gin.Context) {
	orders, err := h.facade.BookedOrders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponses(orders))
}

// ConfirmDelivery handles POST /api/tailor/orders/:id/delivered.
func (h *TailorHandler) ConfirmDelivery(c *gin.Context) {
	order, err := h.facade.ConfirmDelivery(c.Request.Context(), CurrentUserID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAccessDenied):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}
