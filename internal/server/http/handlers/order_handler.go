package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/stitchmate/stitchmate/internal/domain/errors"
	"github.com/stitchmate/stitchmate/internal/domain/model"
	"github.com/stitchmate/stitchmate/internal/server/http/dto"
	"github.com/stitchmate/stitchmate/internal/usecase"
)

// OrderHandler covers the customer side of the order lifecycle.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

func orderErrorStatus(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrAccessDenied):
		c.Status(http.StatusForbidden)
	case errors.Is(err, domainErrors.ErrInvalidStatus):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrInvalidAmount), errors.Is(err, domainErrors.ErrInvalidRating):
		c.Status(http.StatusUnprocessableEntity)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

// Post handles POST /api/user/orders: the current design session becomes a
// posted order open for bidding.
func (h *OrderHandler) Post(c *gin.Context) {
	var req dto.PostOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.PostOrder(c.Request.Context(), CurrentUserID(c), req.Notes, model.DeliveryTimeline(req.Timeline), req.TargetDate)
	if err != nil {
		orderErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewOrderResponse(*order))
}

// List handles GET /api/user/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponses(orders))
}

// Get handles GET /api/user/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), CurrentUserID(c), c.Param("id"))
	if err != nil {
		orderErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}

// Bids handles GET /api/user/orders/:id/bids.
func (h *OrderHandler) Bids(c *gin.Context) {
	bids, err := h.facade.OrderBids(c.Request.Context(), CurrentUserID(c), c.Param("id"))
	if err != nil {
		orderErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBidResponses(bids))
}

// SelectBid handles POST /api/user/orders/:id/select-bid.
func (h *OrderHandler) SelectBid(c *gin.Context) {
	var req dto.SelectBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.SelectBid(c.Request.Context(), CurrentUserID(c), c.Param("id"), req.BidID)
	if err != nil {
		orderErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}

// Booking handles POST /api/user/orders/:id/booking.
func (h *OrderHandler) Booking(c *gin.Context) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	in := usecase.BookingInput{
		Measurements: model.Measurements{
			Chest:           req.Measurements.Chest,
			Waist:           req.Measurements.Waist,
			Hips:            req.Measurements.Hips,
			Length:          req.Measurements.Length,
			Shoulder:        req.Measurements.Shoulder,
			Sleeves:         req.Measurements.Sleeves,
			Neckline:        req.Measurements.Neckline,
			AdditionalNotes: req.Measurements.AdditionalNotes,
		},
		Logistics: model.LogisticsOption{
			Type:    model.LogisticsType(req.Logistics.Type),
			Address: req.Logistics.Address,
			Date:    req.Logistics.Date,
			Notes:   req.Logistics.Notes,
		},
	}

	order, total, err := h.facade.Booking(c.Request.Context(), CurrentUserID(c), c.Param("id"), in)
	if err != nil {
		orderErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BookingResponse{Order: dto.NewOrderResponse(*order), Total: total})
}

// Pay handles POST /api/user/orders/:id/payment.
func (h *OrderHandler) Pay(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.Pay(c.Request.Context(), CurrentUserID(c), c.Param("id"), model.PaymentMethod(req.Method), req.PaymentMethodID)
	if err != nil {
		orderErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}

// Review handles POST /api/user/orders/:id/review.
func (h *OrderHandler) Review(c *gin.Context) {
	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.Review(c.Request.Context(), CurrentUserID(c), c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		orderErrorStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(*order))
}
