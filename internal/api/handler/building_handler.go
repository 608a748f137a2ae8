package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/campus-compass/campus-api/internal/api/metrics"
	"github.com/campus-compass/campus-api/internal/core/domain"
	"github.com/campus-compass/campus-api/internal/core/ports"
)

// BuildingHandler handles HTTP requests for campus buildings.
type BuildingHandler struct {
	service ports.BuildingService
}

func NewBuildingHandler(service ports.BuildingService) *BuildingHandler {
	return &BuildingHandler{service: service}
}

// List handles GET /api/buildings.
//
// @Summary      List all buildings
// @Tags         buildings
// @Produce      json
// @Success      200  {array}   domain.Building
// @Failure      500  {object}  errorResponse
// @Router       /api/buildings [get]
func (h *BuildingHandler) List(c echo.Context) error {
	buildings, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, buildings)
}

// Filter handles GET /api/buildings/filter?amenities=a,b. Only buildings
// offering every listed amenity match.
//
// @Summary      Filter buildings by amenities
// @Tags         buildings
// @Produce      json
// @Param        amenities  query     string  true  "Comma-separated amenity list (contains-all)"
// @Success      200        {array}   domain.Building
// @Failure      400        {object}  validationErrorResponse
// @Failure      500        {object}  errorResponse
// @Router       /api/buildings/filter [get]
func (h *BuildingHandler) Filter(c echo.Context) error {
	raw := c.QueryParam("amenities")
	if strings.TrimSpace(raw) == "" {
		metrics.ValidationRejectionsTotal.WithLabelValues("building").Inc()
		return c.JSON(http.StatusBadRequest, validationErrorResponse{Errors: []FieldError{
			{Field: "amenities", Message: "amenities must be a comma-separated string"},
		}})
	}

	amenities := make([]string, 0)
	for _, a := range strings.Split(raw, ",") {
		if a = cleanString(a); a != "" {
			amenities = append(amenities, a)
		}
	}

	buildings, err := h.service.FilterByAmenities(c.Request().Context(), amenities)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, buildings)
}

// Get handles GET /api/buildings/:id.
//
// @Summary      Get a building by id
// @Tags         buildings
// @Produce      json
// @Param        id   path      string  true  "Building id"
// @Success      200  {object}  domain.Building
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/buildings/{id} [get]
func (h *BuildingHandler) Get(c echo.Context) error {
	building, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrBuildingNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "building not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, building)
}

// Create handles POST /api/buildings.
//
// @Summary      Create a building
// @Tags         buildings
// @Accept       json
// @Produce      json
// @Param        body  body      buildingRequest  true  "Building details, floors and rooms embedded"
// @Success      201   {object}  domain.Building
// @Failure      400   {object}  validationErrorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/buildings [post]
func (h *BuildingHandler) Create(c echo.Context) error {
	var req buildingRequest
	if err := bindRequest(c, &req); err != nil {
		return respondBadRequest(c, "building", err)
	}

	name, loc, floors, amenities := req.toInput()
	created, err := h.service.Create(c.Request().Context(), ports.BuildingInput{
		Name:      name,
		Location:  loc,
		Floors:    floors,
		Amenities: amenities,
	})
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("building", "create").Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/buildings/:id as a full-document replace.
//
// @Summary      Replace a building
// @Tags         buildings
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Building id"
// @Param        body  body      buildingRequest  true  "Replacement document"
// @Success      200   {object}  domain.Building
// @Failure      400   {object}  validationErrorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/buildings/{id} [put]
func (h *BuildingHandler) Update(c echo.Context) error {
	var req buildingRequest
	if err := bindRequest(c, &req); err != nil {
		return respondBadRequest(c, "building", err)
	}

	name, loc, floors, amenities := req.toInput()
	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.BuildingInput{
		Name:      name,
		Location:  loc,
		Floors:    floors,
		Amenities: amenities,
	})
	if err != nil {
		if errors.Is(err, domain.ErrBuildingNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "building not found"})
		}
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("building", "replace").Inc()
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/buildings/:id.
//
// @Summary      Delete a building
// @Tags         buildings
// @Param        id  path  string  true  "Building id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/buildings/{id} [delete]
func (h *BuildingHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrBuildingNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "building not found"})
		}
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("building", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
