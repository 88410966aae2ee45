package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"marketplace-server/internal/analytics/processor"
	"marketplace-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.AnalyticsProcessor
	logger    *observability.Logger
}

func New(processor processor.AnalyticsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// TrackClickRequest is the body of a click ingestion call.
type TrackClickRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Button    string `json:"buttonName" binding:"required"`
}

// WindowRequest is the shared body of the date, week and month queries.
type WindowRequest struct {
	StartDate string `json:"startDate" binding:"required"`
}

// TopProductsRequest is the body of the ranking query.
type TopProductsRequest struct {
	Date  string `json:"date" binding:"required"`
	Limit int    `json:"limit"`
}

// parseDate accepts a plain calendar date or a full RFC3339 timestamp;
// either way only the date part matters downstream.
func parseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}

// vendorFromContext reads the vendor id the auth middleware stored.
func (h *Handler) vendorFromContext(c *gin.Context) (uuid.UUID, bool) {
	ctx := c.Request.Context()

	vendorIDStr, exists := c.Get("Vendor-ID")
	if !exists {
		h.logger.Error(ctx, "vendor ID not found in context", nil)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}

	vendorID, err := uuid.Parse(vendorIDStr.(string))
	if err != nil {
		h.logger.Error(ctx, "failed to parse vendor ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vendor id"})
		return uuid.Nil, false
	}
	return vendorID, true
}

// HandleTrackClick ingests one click event for a product button.
func (h *Handler) HandleTrackClick(c *gin.Context) {
	ctx := c.Request.Context()

	var req TrackClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind track-click request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId and buttonName are required"})
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		h.logger.Error(ctx, "failed to parse product ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := h.processor.RecordClick(ctx, productID, req.Button); err != nil {
		if errors.Is(err, processor.ErrInvalidButton) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unrecognized button name"})
			return
		}
		if errors.Is(err, processor.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		h.logger.Error(ctx, "failed to track click", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to track click"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// HandleGetDataForDate returns flat counter totals for one calendar day.
func (h *Handler) HandleGetDataForDate(c *gin.Context) {
	ctx := c.Request.Context()

	vendorID, ok := h.vendorFromContext(c)
	if !ok {
		return
	}

	var req WindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind date request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate is required"})
		return
	}

	date, err := parseDate(req.StartDate)
	if err != nil {
		h.logger.Error(ctx, "failed to parse start date", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate, use YYYY-MM-DD or RFC3339"})
		return
	}

	totals, err := h.processor.GetDataForDate(ctx, vendorID, date)
	if err != nil {
		if errors.Is(err, processor.ErrNoData) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no click data for date"})
			return
		}
		h.logger.Error(ctx, "failed to get data for date", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get data for date"})
		return
	}

	c.JSON(http.StatusOK, totals)
}

// HandleGetDataForWeek returns 7 day points starting at the requested date.
func (h *Handler) HandleGetDataForWeek(c *gin.Context) {
	h.handleWindowQuery(c, h.processor.GetDataForWeek)
}

// HandleGetDataForMonth returns one day point per day of the requested month.
func (h *Handler) HandleGetDataForMonth(c *gin.Context) {
	h.handleWindowQuery(c, h.processor.GetDataForMonth)
}

// handleWindowQuery is the shared request path of the week and month
// queries; only the processor call differs.
func (h *Handler) handleWindowQuery(c *gin.Context, query func(ctx context.Context, vendorID uuid.UUID, date time.Time) ([]processor.DayPoint, error)) {
	ctx := c.Request.Context()

	vendorID, ok := h.vendorFromContext(c)
	if !ok {
		return
	}

	var req WindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind window request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate is required"})
		return
	}

	date, err := parseDate(req.StartDate)
	if err != nil {
		h.logger.Error(ctx, "failed to parse start date", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate, use YYYY-MM-DD or RFC3339"})
		return
	}

	points, err := query(ctx, vendorID, date)
	if err != nil {
		h.logger.Error(ctx, "failed to aggregate window", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate window"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": points})
}

// HandleTopProducts ranks the vendor's products by click volume on one day.
func (h *Handler) HandleTopProducts(c *gin.Context) {
	ctx := c.Request.Context()

	vendorID, ok := h.vendorFromContext(c)
	if !ok {
		return
	}

	var req TopProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind top-products request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		h.logger.Error(ctx, "failed to parse date", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, use YYYY-MM-DD or RFC3339"})
		return
	}

	results, err := h.processor.TopProducts(ctx, vendorID, date, req.Limit)
	if err != nil {
		h.logger.Error(ctx, "failed to get top products", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get top products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": results})
}
