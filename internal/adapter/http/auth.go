package http

import (
	"fmt"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const userIDKey = "userID"

var errUnauthorized = fiber.NewError(fiber.StatusUnauthorized, "unauthorized")

// Auth accepts HMAC-signed bearer tokens whose sub claim is a user id.
func Auth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return errUnauthorized
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return errUnauthorized
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return errUnauthorized
		}
		sub, _ := claims["sub"].(string)
		uid, err := uuid.Parse(sub)
		if err != nil {
			return errUnauthorized
		}
		c.Locals(userIDKey, uid)
		return c.Next()
	}
}

func userID(c *fiber.Ctx) uuid.UUID {
	uid, _ := c.Locals(userIDKey).(uuid.UUID)
	return uid
}
