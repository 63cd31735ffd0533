package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// TestHandler serves the role-labeled content endpoints. Access rules live
// in the router: /all is public, the rest sit behind the Auth and RequireAny
// middleware.
type TestHandler struct{}

func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// All is reachable without authentication.
func (h *TestHandler) All(c echo.Context) error {
	return c.String(http.StatusOK, "Public Content.")
}

// User requires any of the USER, MODERATOR or ADMIN roles.
func (h *TestHandler) User(c echo.Context) error {
	return c.String(http.StatusOK, "User Content.")
}

// Mod requires the MODERATOR role.
func (h *TestHandler) Mod(c echo.Context) error {
	return c.String(http.StatusOK, "Moderator Board.")
}

// Admin requires the ADMIN role.
func (h *TestHandler) Admin(c echo.Context) error {
	return c.String(http.StatusOK, "Admin Board.")
}
