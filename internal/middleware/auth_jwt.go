package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"devconnector/dto"
)

type authClaims struct {
	UID string `json:"uid,omitempty"`
	jwt.RegisteredClaims
}

// RequireAuth verifies the bearer token and stores the caller's user id in
// c.Locals("user_id"). Every private route sits behind it.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Msg: "No token, authorization denied"})
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var claims authClaims

		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, fiber.ErrUnauthorized
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Msg: "Token is not valid"})
		}

		uid := claims.UID
		if uid == "" {
			uid = claims.Subject
		}
		if uid == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.ErrorResponse{Msg: "Token is not valid"})
		}

		c.Locals("user_id", uid)
		return c.Next()
	}
}

// UIDFromLocals reads the user id RequireAuth stored on the request.
func UIDFromLocals(c *fiber.Ctx) (string, bool) {
	if v := c.Locals("user_id"); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return s, true
		}
	}
	return "", false
}
