package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carboncell/user-auth/internal/api/metrics"
	"github.com/carboncell/user-auth/internal/core/domain"
	"github.com/carboncell/user-auth/internal/core/ports"
)

// Exact response messages. These are part of the external contract and must
// not be reworded.
const (
	msgAuthFailed     = "Error: Authentication failed."
	msgUsernameTaken  = "Error: Username is already taken!"
	msgEmailInUse     = "Error: Email is already in use!"
	msgSignUpFailed   = "Error: Registration failed."
	msgSignedOut      = "You've been signed out!"
	msgInvalidPayload = "Error: Invalid request payload."
)

// cookiePath scopes the token cookie to the API surface.
const cookiePath = "/api"

type AuthHandler struct {
	authService ports.AuthService
	cookieName  string
	tokenTTL    time.Duration
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, cookieName string, tokenTTL time.Duration, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieName:  cookieName,
		tokenTTL:    tokenTTL,
		log:         log,
	}
}

type signInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signUpRequest struct {
	Username string   `json:"username" validate:"required,min=3,max=20"`
	Email    string   `json:"email"    validate:"required,email,max=50"`
	Password string   `json:"password" validate:"required,min=6,max=40"`
	Role     []string `json:"role,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type userInfoResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// SignIn authenticates a username/password pair and issues the token cookie.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  userInfoResponse
// @Failure      400   {object}  messageResponse
// @Router       /api/auth/signIn [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: msgInvalidPayload})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Error: " + err.Error()})
	}

	h.log.Info().Str("username", req.Username).Msg("attempting to authenticate user")

	result, err := h.authService.SignIn(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		// One undifferentiated rejection for every failure mode; only the
		// server-side log tells credential mismatches from infrastructure
		// trouble.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.log.Warn().Str("username", req.Username).Msg("authentication rejected")
		} else {
			h.log.Error().Err(err).Str("username", req.Username).Msg("authentication failed unexpectedly")
		}
		metrics.SignInsTotal.WithLabelValues("failure").Inc()
		return c.JSON(http.StatusBadRequest, messageResponse{Message: msgAuthFailed})
	}

	c.SetCookie(h.tokenCookie(result.Token))
	metrics.SignInsTotal.WithLabelValues("success").Inc()
	h.log.Info().Str("username", req.Username).Msg("user successfully authenticated")

	return c.JSON(http.StatusOK, userInfoResponse{
		ID:       result.Principal.ID,
		Username: result.Principal.Username,
		Email:    result.Principal.Email,
		Roles:    result.Principal.Authorities,
	})
}

// SignUp registers a new user.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Registration details"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Router       /api/auth/signUp [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: msgInvalidPayload})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Error: " + err.Error()})
	}

	h.log.Info().Str("username", req.Username).Msg("attempting to register new user")

	label, err := h.authService.SignUp(c.Request().Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			h.log.Warn().Str("username", req.Username).Msg("username is already taken")
			metrics.SignUpRejectionsTotal.WithLabelValues("username_taken").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: msgUsernameTaken})
		case errors.Is(err, domain.ErrEmailInUse):
			h.log.Warn().Str("email", req.Email).Msg("email is already in use")
			metrics.SignUpRejectionsTotal.WithLabelValues("email_in_use").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: msgEmailInUse})
		default:
			h.log.Error().Err(err).Str("username", req.Username).Msg("registration failed")
			metrics.SignUpRejectionsTotal.WithLabelValues("error").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: msgSignUpFailed})
		}
	}

	metrics.SignUpsTotal.WithLabelValues(label).Inc()
	h.log.Info().Str("username", req.Username).Str("label", label).Msg("user registered")

	return c.JSON(http.StatusOK, messageResponse{Message: label + " registered successfully!"})
}

// SignOut clears the token cookie. It does not depend on the current
// session being valid, so calling it repeatedly returns the same response.
//
// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/auth/signOut [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	c.SetCookie(h.cleanCookie())
	h.log.Info().Msg("user signed out")
	return c.JSON(http.StatusOK, messageResponse{Message: msgSignedOut})
}

// tokenCookie materialises the signed token as an HTTP cookie bound to the
// API path. HttpOnly keeps it away from scripts.
func (h *AuthHandler) tokenCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     cookiePath,
		MaxAge:   int(h.tokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// cleanCookie is the sign-out counterpart: same name and path, empty value,
// immediate expiry.
func (h *AuthHandler) cleanCookie() *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     cookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
