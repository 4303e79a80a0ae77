package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// StaffIDContextKey is where JWTAuth stores the authenticated operator's
// id on the echo context.
const StaffIDContextKey = "staff_id"

// JWTAuth guards staff routes: it requires a valid HS256 bearer token and
// exposes the staff id to handlers.
func JWTAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing Authorization header"})
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization must be 'Bearer <token>'"})
			}

			staffID, err := validateToken(parts[1], secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			c.Set(StaffIDContextKey, staffID)
			return next(c)
		}
	}
}

func validateToken(raw string, secret []byte) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	if !tok.Valid {
		return "", fmt.Errorf("token invalid")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("unexpected claims type")
	}
	staffID, _ := claims["staff_id"].(string)
	if staffID == "" {
		return "", fmt.Errorf("token missing staff_id claim")
	}
	return staffID, nil
}
