package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"recipe-catalog-api/domain"
	"recipe-catalog-api/internal/api/presenters"
	"recipe-catalog-api/pkg/user"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(userService user.UserService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	})
}

// AuthMiddleware resolves the opaque bearer token to its owner and
// stores the user id in Locals. Every failure is reported uniformly.
func (m *middleware) AuthMiddleware(userService user.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		key, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || key == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrTokenInvalid)
		}

		authedUser, err := userService.GetUserByToken(c.Context(), key)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrTokenInvalid)
		}

		c.Locals("user_id", authedUser.ID.String())
		return c.Next()
	}
}
