package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campus-compass/campus-api/internal/api/metrics"
	"github.com/campus-compass/campus-api/internal/core/domain"
	"github.com/campus-compass/campus-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup registers a new credential and returns a bearer token.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Desired username and password"
// @Success      201   {object}  tokenResponse
// @Failure      400   {object}  validationErrorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindRequest(c, &req); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("signup", "rejected").Inc()
		return respondBadRequest(c, "signup", err)
	}

	tok, err := h.authService.Signup(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			metrics.AuthAttemptsTotal.WithLabelValues("signup", "rejected").Inc()
			return c.JSON(http.StatusConflict, errorResponse{Error: "username already taken"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.AuthAttemptsTotal.WithLabelValues("signup", "rejected").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid input data"})
		default:
			metrics.AuthAttemptsTotal.WithLabelValues("signup", "error").Inc()
			return err
		}
	}

	metrics.AuthAttemptsTotal.WithLabelValues("signup", "success").Inc()
	return c.JSON(http.StatusCreated, tokenResponse{Token: tok})
}

// Login verifies a credential and returns a bearer token.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Username and password"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	tok, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		// Missing user, wrong password and empty input all read the same to
		// the client.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.AuthAttemptsTotal.WithLabelValues("login", "rejected").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		}
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{Token: tok})
}
