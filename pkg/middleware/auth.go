package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

func bearerToken(c echo.Context) string {
	h := c.Request().Header.Get("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func parseClaims(token, secret string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, jwt.NewValidationError("invalid claims", jwt.ValidationErrorClaimsInvalid)
	}
	return claims, nil
}

// UserAuth requires a valid user JWT and puts uid/isAdmin on the context.
func UserAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Please authenticate"})
			}
			claims, err := parseClaims(token, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Please authenticate"})
			}
			id, _ := claims["id"].(float64)
			isAdmin, _ := claims["isAdmin"].(bool)
			c.Set("uid", uint(id))
			c.Set("isAdmin", isAdmin)
			return next(c)
		}
	}
}

// AdminOnly accepts the configured bootstrap token or a JWT carrying the
// admin role claim. The role is checked, never a literal sentinel.
func AdminOnly(secret, adminToken string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Please authenticate"})
			}
			if adminToken != "" && token == adminToken {
				c.Set("isAdmin", true)
				return next(c)
			}
			claims, err := parseClaims(token, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Please authenticate"})
			}
			if isAdmin, _ := claims["isAdmin"].(bool); !isAdmin {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "Admin access required"})
			}
			id, _ := claims["id"].(float64)
			c.Set("uid", uint(id))
			c.Set("isAdmin", true)
			return next(c)
		}
	}
}
