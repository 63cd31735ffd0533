package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAny enforces role-based access control: the request principal must
// hold at least one of the required authorities. A missing principal means
// the Auth middleware did not run or did not authenticate — that is a 401,
// distinct from the 403 returned for an authenticated but insufficient
// principal.
func RequireAny(authorities ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := PrincipalFrom(c)
			if principal == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !principal.HasAnyAuthority(authorities...) {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
