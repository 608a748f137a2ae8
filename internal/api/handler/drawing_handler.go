package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campus-compass/campus-api/internal/api/metrics"
	"github.com/campus-compass/campus-api/internal/core/ports"
)

// DrawingHandler handles HTTP requests for PDF annotations.
type DrawingHandler struct {
	service ports.DrawingService
}

func NewDrawingHandler(service ports.DrawingService) *DrawingHandler {
	return &DrawingHandler{service: service}
}

// Create handles POST /drawings.
//
// @Summary      Create a drawing
// @Tags         drawings
// @Accept       json
// @Produce      json
// @Param        body  body      drawingRequest  true  "Drawing details"
// @Success      201   {object}  domain.Drawing
// @Failure      400   {object}  validationErrorResponse
// @Failure      500   {object}  errorResponse
// @Router       /drawings [post]
func (h *DrawingHandler) Create(c echo.Context) error {
	var req drawingRequest
	if err := bindRequest(c, &req); err != nil {
		return respondBadRequest(c, "drawing", err)
	}

	created, err := h.service.Create(c.Request().Context(), ports.DrawingInput{
		UserID:     req.UserID,
		PdfURL:     req.PdfURL,
		PageNumber: req.PageNumber,
		Drawing:    req.Drawing,
	})
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("drawing", "create").Inc()
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /drawings?userId&pdfUrl, returning every page's drawing
// for one user and PDF.
//
// @Summary      List drawings for a user and PDF
// @Tags         drawings
// @Produce      json
// @Param        userId  query     string  true  "Owner id"
// @Param        pdfUrl  query     string  true  "PDF identifier"
// @Success      200     {array}   domain.Drawing
// @Failure      400     {object}  validationErrorResponse
// @Failure      500     {object}  errorResponse
// @Router       /drawings [get]
func (h *DrawingHandler) List(c echo.Context) error {
	userID := cleanString(c.QueryParam("userId"))
	pdfURL := cleanString(c.QueryParam("pdfUrl"))

	fieldErrs := []FieldError{}
	if userID == "" {
		fieldErrs = append(fieldErrs, FieldError{Field: "userId", Message: "userId is required"})
	}
	if pdfURL == "" {
		fieldErrs = append(fieldErrs, FieldError{Field: "pdfUrl", Message: "pdfUrl is required"})
	}
	if len(fieldErrs) > 0 {
		metrics.ValidationRejectionsTotal.WithLabelValues("drawing").Inc()
		return c.JSON(http.StatusBadRequest, validationErrorResponse{Errors: fieldErrs})
	}

	drawings, err := h.service.List(c.Request().Context(), userID, pdfURL)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, drawings)
}

// Save handles PUT /drawings: an upsert keyed by (userId, pdfUrl, pageNumber)
// that replaces the stored drawing payload.
//
// @Summary      Save (upsert) a drawing
// @Tags         drawings
// @Accept       json
// @Produce      json
// @Param        body  body      drawingRequest  true  "Drawing details"
// @Success      200   {object}  domain.Drawing
// @Failure      400   {object}  validationErrorResponse
// @Failure      500   {object}  errorResponse
// @Router       /drawings [put]
func (h *DrawingHandler) Save(c echo.Context) error {
	var req drawingRequest
	if err := bindRequest(c, &req); err != nil {
		return respondBadRequest(c, "drawing", err)
	}

	saved, err := h.service.Save(c.Request().Context(), ports.DrawingInput{
		UserID:     req.UserID,
		PdfURL:     req.PdfURL,
		PageNumber: req.PageNumber,
		Drawing:    req.Drawing,
	})
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("drawing", "replace").Inc()
	return c.JSON(http.StatusOK, saved)
}
