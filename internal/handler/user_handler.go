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
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type IUserHandler interface {
	GetProfile(c *fiber.Ctx) error
	UpdateProfile(c *fiber.Ctx) error
	GetWatchlist(c *fiber.Ctx) error
	AddToWatchlist(c *fiber.Ctx) error
	RemoveFromWatchlist(c *fiber.Ctx) error
}

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

//------------------------------------------
//------------------------------------------

func authUser(c *fiber.Ctx) *model.User {
	return c.Locals(middleware.UserLocalKey).(*model.User)
}

// GetProfile godoc
//
//	@Summary		Profile
//	@Description	return the profile of the authenticated user.
//	@Tags			User
//	@Success		200	{object}	response.ResponseModel
//	@Failure		401	{object}	response.ResponseModel
//	@Security		BearerAuth
//	@Router			/user/profile [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	return response.ResponseOKWithData(c, response.ProfileRetrieved, model.UserRes{User: authUser(c)})
}

// UpdateProfile godoc
//
//	@Summary		Update Profile
//	@Description	update the display name of the authenticated user.
//	@Tags			User
//	@Param			body	body		model.UpdateProfileReq	true	"name"
//	@Success		200		{object}	response.ResponseModel
//	@Failure		401,422	{object}	response.ResponseModel
//	@Security		BearerAuth
//	@Router			/user/profile [patch]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req model.UpdateProfileReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	if errs := util.ValidateProfileUpdate(&req); len(errs) > 0 {
		return response.ResponseValidationError(c, errs)
	}

	user, err := h.userService.UpdateProfile(authUser(c).Id.Hex(), req.Name)
	if err != nil {
		return h.storeError(c, "UpdateProfile", err)
	}

	return response.ResponseOKWithData(c, response.ProfileUpdated, model.UserRes{User: user})
}

// GetWatchlist godoc
//
//	@Summary		Watchlist
//	@Description	return the watchlist of the authenticated user.
//	@Tags			User
//	@Success		200	{object}	response.ResponseModel
//	@Failure		401	{object}	response.ResponseModel
//	@Security		BearerAuth
//	@Router			/user/watchlist [get]
func (h *UserHandler) GetWatchlist(c *fiber.Ctx) error {
	return response.ResponseOKWithData(c, response.WatchlistRetrieved, model.WatchlistRes{
		Watchlist: authUser(c).Watchlist,
	})
}

// AddToWatchlist godoc
//
//	@Summary		Add To Watchlist
//	@Description	append a title to the watchlist. Duplicate (mediaId, mediaType) pairs are rejected.
//	@Tags			User
//	@Param			body		body		model.AddWatchlistReq	true	"mediaId, mediaType, title, posterPath"
//	@Success		201			{object}	response.ResponseModel
//	@Failure		401,409,422	{object}	response.ResponseModel
//	@Security		BearerAuth
//	@Router			/user/watchlist [post]
func (h *UserHandler) AddToWatchlist(c *fiber.Ctx) error {
	var req model.AddWatchlistReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	if errs := util.ValidateWatchlistAdd(&req); len(errs) > 0 {
		return response.ResponseValidationError(c, errs)
	}

	user, err := h.userService.AddToWatchlist(authUser(c).Id.Hex(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyInWatchlist) {
			return response.ResponseError(c, response.AlreadyInWatchlist, fiber.StatusConflict)
		}
		return h.storeError(c, "AddToWatchlist", err)
	}

	return response.ResponseCreated(c, response.WatchlistAdded, model.WatchlistRes{
		Watchlist: user.Watchlist,
	})
}

// RemoveFromWatchlist godoc
//
//	@Summary		Remove From Watchlist
//	@Description	remove a title from the watchlist. Removing an absent title is a no-op.
//	@Tags			User
//	@Param			mediaId		path		int		true	"mediaId"
//	@Param			mediaType	query		string	false	"movie or tv"
//	@Success		200			{object}	response.ResponseModel
//	@Failure		401			{object}	response.ResponseModel
//	@Security		BearerAuth
//	@Router			/user/watchlist/:mediaId [delete]
func (h *UserHandler) RemoveFromWatchlist(c *fiber.Ctx) error {
	mediaId, err := strconv.ParseInt(c.Params("mediaId", ""), 10, 64)
	if err != nil {
		return response.ResponseError(c, "Invalid mediaId", fiber.StatusBadRequest)
	}
	mediaType := c.Query("mediaType", "")

	user, err := h.userService.RemoveFromWatchlist(authUser(c).Id.Hex(), mediaId, mediaType)
	if err != nil {
		return h.storeError(c, "RemoveFromWatchlist", err)
	}

	return response.ResponseOKWithData(c, response.WatchlistRemoved, model.WatchlistRes{
		Watchlist: user.Watchlist,
	})
}

func (h *UserHandler) storeError(c *fiber.Ctx, op string, err error) error {
	errorMessage := fmt.Sprintf("%s failed: %v", op, err)
	errorHandler.SaveError(errorMessage, err)
	return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
}
