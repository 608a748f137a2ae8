package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campus-compass/campus-api/internal/api/metrics"
	"github.com/campus-compass/campus-api/internal/core/domain"
	"github.com/campus-compass/campus-api/internal/core/ports"
)

// UserHandler handles HTTP requests for the user directory.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /users. The name and job query parameters narrow the
// listing; job filters the Classes field.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        name  query     string  false  "Filter by exact name"
// @Param        job   query     string  false  "Filter by exact Classes value"
// @Success      200   {object}  usersListResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	name := c.QueryParam("name")
	job := c.QueryParam("job")

	users, err := h.service.List(c.Request().Context(), name, job)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersList(users))
}

// Get handles GET /users/:id. An id that cannot exist is reported exactly
// like one that does not: 404.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  usersListResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, singleUser(user))
}

// Create handles POST /users.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  validationErrorResponse
// @Failure      500   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := bindRequest(c, &req); err != nil {
		return respondBadRequest(c, "user", err)
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Name:        req.Name,
		Classes:     req.Classes,
		RoomNumbers: req.RoomNumbers,
	})
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("user", "create").Inc()
	return c.JSON(http.StatusCreated, created)
}

// Delete handles DELETE /users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
		}
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("user", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
