package middleware

import (
	"cinex_api/internal/repository"
	errorHandler "cinex_api/pkg/error"
	"cinex_api/pkg/response"
	"cinex_api/util"
	"errors"
	"fmt"
	"regexp"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// UserLocalKey is where the auth middleware stores the loaded user record.
const UserLocalKey = "authUser"

// AuthMiddleware is the single enforcement point for protected routes.
// It extracts the session token, verifies it, loads the current user
// record and attaches it to the request, or rejects with a uniform 401.
func AuthMiddleware(userRepo repository.IUserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := util.ExtractToken(c)
		if token == "" {
			return response.ResponseError(c, response.AuthRequired, fiber.StatusUnauthorized)
		}

		claims, err := util.VerifyToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return response.ResponseError(c, response.SessionExpired, fiber.StatusUnauthorized)
			}
			return response.ResponseError(c, response.InvalidSession, fiber.StatusUnauthorized)
		}

		// Fresh lookup catches accounts removed after the token was issued.
		user, err := userRepo.GetUserById(claims.UserId)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return response.ResponseError(c, response.AccountNotFound, fiber.StatusUnauthorized)
			}
			errorMessage := fmt.Sprintf("Auth middleware: user lookup failed: %v", err)
			errorHandler.SaveError(errorMessage, err)
			return response.ResponseError(c, response.AuthError, fiber.StatusInternalServerError)
		}

		c.Locals(UserLocalKey, user)
		return c.Next()
	}
}

var (
	LocalhostRegex = regexp.MustCompile(`(?i)^(https?://)?localhost(:\d{4})?$`)
)
