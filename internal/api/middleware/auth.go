package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/carboncell/user-auth/internal/core/domain"
)

// principalKey is the echo context key the authenticated principal is stored
// under. Handlers and the RBAC middleware read it back via PrincipalFrom.
const principalKey = "principal"

// Auth validates the JWT carried in the token cookie and injects the
// resolved principal into the request context. Requests without a valid
// token are rejected with 401 before reaching any handler.
func Auth(jwtSecret, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication token")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(principalKey, principalFromClaims(claims))
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal injected by Auth, or nil when the
// request never passed through it.
func PrincipalFrom(c echo.Context) *domain.Principal {
	p, _ := c.Get(principalKey).(*domain.Principal)
	return p
}

func principalFromClaims(claims jwt.MapClaims) *domain.Principal {
	p := &domain.Principal{}
	p.Username, _ = claims["sub"].(string)
	p.ID, _ = claims["id"].(string)
	p.Email, _ = claims["email"].(string)

	if raw, ok := claims["roles"].([]interface{}); ok {
		p.Authorities = make([]string, 0, len(raw))
		for _, r := range raw {
			if s, ok := r.(string); ok {
				p.Authorities = append(p.Authorities, s)
			}
		}
	}
	return p
}
