package handler

import (
	"cinex_api/api/middleware"
	"cinex_api/internal/repository"
	"cinex_api/internal/service"
	"cinex_api/model"
	errorHandler "cinex_api/pkg/error"
	"cinex_api/pkg/response"
	"cinex_api/util"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type IAuthHandler interface {
	Signup(c *fiber.Ctx) error
	Login(c *fiber.Ctx) error
	Logout(c *fiber.Ctx) error
	GetMe(c *fiber.Ctx) error
}

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

//------------------------------------------
//------------------------------------------

// Signup godoc
//
//	@Summary		Signup
//	@Description	register a new account, issue a session token and set the session cookie.
//	@Tags			Auth
//	@Param			body	body		model.SignupReq	true	"name, email, password"
//	@Success		201		{object}	response.ResponseModel
//	@Failure		409,422	{object}	response.ResponseModel
//	@Router			/auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req model.SignupReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	if errs := util.ValidateSignup(&req); len(errs) > 0 {
		return response.ResponseValidationError(c, errs)
	}

	user, token, err := h.authService.Signup(strings.TrimSpace(req.Name), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return response.ResponseError(c, response.EmailAlreadyExist, fiber.StatusConflict)
		}
		errorMessage := fmt.Sprintf("Signup failed: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	util.AttachTokenCookie(c, token)

	// Token also goes in the body for clients that use the Authorization
	// header instead of cookies.
	return response.ResponseCreated(c, response.AccountCreated, model.UserWithTokenRes{
		User:  user,
		Token: token,
	})
}

// Login godoc
//
//	@Summary		Login
//	@Description	authenticate with email and password, issue a session token and set the session cookie.
//	@Tags			Auth
//	@Param			body	body		model.LoginReq	true	"email, password"
//	@Success		200		{object}	response.ResponseModel
//	@Failure		401,422	{object}	response.ResponseModel
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req model.LoginReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	if errs := util.ValidateLogin(&req); len(errs) > 0 {
		return response.ResponseValidationError(c, errs)
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return response.ResponseError(c, response.InvalidEmailOrPassword, fiber.StatusUnauthorized)
		}
		errorMessage := fmt.Sprintf("Login failed: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	util.AttachTokenCookie(c, token)

	return response.ResponseOKWithData(c, response.SignedIn, model.UserWithTokenRes{
		User:  user,
		Token: token,
	})
}

// Logout godoc
//
//	@Summary		Logout
//	@Description	clear the session cookie. Previously issued tokens stay valid until they expire.
//	@Tags			Auth
//	@Success		200	{object}	response.ResponseModel
//	@Failure		401	{object}	response.ResponseModel
//	@Security		BearerAuth
//	@Router			/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	util.ClearTokenCookie(c)
	return response.ResponseOK(c, response.SignedOut)
}

// GetMe godoc
//
//	@Summary		Current session
//	@Description	return the authenticated user attached by the auth middleware.
//	@Tags			Auth
//	@Success		200	{object}	response.ResponseModel
//	@Failure		401	{object}	response.ResponseModel
//	@Security		BearerAuth
//	@Router			/auth/me [get]
func (h *AuthHandler) GetMe(c *fiber.Ctx) error {
	user := c.Locals(middleware.UserLocalKey).(*model.User)
	return response.ResponseOKWithData(c, response.AuthenticatedUser, model.UserRes{User: user})
}
