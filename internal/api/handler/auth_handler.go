package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/happythoughts/thoughts-api/internal/api/metrics"
	"github.com/happythoughts/thoughts-api/internal/core/domain"
	"github.com/happythoughts/thoughts-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup creates a new account and returns its access token.
//
// @Summary      Sign up a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Email and password"
// @Success      201   {object}  successEnvelope
// @Failure      400   {object}  map[string]any
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	creds, err := h.authService.Signup(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()

	return c.JSON(http.StatusCreated, envelope(credentialsResponse{
		Email:       creds.Email,
		ID:          creds.ID,
		AccessToken: creds.AccessToken,
	}))
}

// Login verifies credentials and returns the account's access token.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Email and password"
// @Success      200   {object}  successEnvelope
// @Failure      401   {object}  map[string]any
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		// Malformed credentials are reported like wrong ones so the
		// response shape stays uniform across all login failures.
		return domain.ErrInvalidCredentials
	}

	creds, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, envelope(credentialsResponse{
		Email:       creds.Email,
		ID:          creds.ID,
		AccessToken: creds.AccessToken,
	}))
}
