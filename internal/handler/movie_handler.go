package handler

import (
	"cinex_api/internal/service"
	"cinex_api/model"
	errorHandler "cinex_api/pkg/error"
	"cinex_api/pkg/response"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type IMovieHandler interface {
	Trending(c *fiber.Ctx) error
	Popular(c *fiber.Ctx) error
	TopRated(c *fiber.Ctx) error
	NowPlaying(c *fiber.Ctx) error
	Search(c *fiber.Ctx) error
	Detail(c *fiber.Ctx) error
	Genres(c *fiber.Ctx) error
	Discover(c *fiber.Ctx) error
}

type MovieHandler struct {
	movieService service.IMovieService
}

func NewMovieHandler(movieService service.IMovieService) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
	}
}

//------------------------------------------
//------------------------------------------

func mediaTypeParam(c *fiber.Ctx) (string, bool) {
	mediaType := c.Params("mediaType", "")
	if mediaType != model.MediaTypeMovie && mediaType != model.MediaTypeTv {
		return "", false
	}
	return mediaType, true
}

func (h *MovieHandler) catalogError(c *fiber.Ctx, op string, err error) error {
	errorMessage := fmt.Sprintf("%s: catalog fetch failed: %v", op, err)
	errorHandler.SaveError(errorMessage, err)
	return response.ResponseError(c, response.CatalogError, fiber.StatusBadGateway)
}

// Trending godoc
//
//	@Summary		Trending
//	@Description	trending movies and shows of the week.
//	@Tags			Catalog
//	@Success		200	{object}	response.ResponseModel
//	@Failure		401,502	{object}	response.ResponseModel
//	@Security		BearerAuth
//	@Router			/movie/trending [get]
func (h *MovieHandler) Trending(c *fiber.Ctx) error {
	res, err := h.movieService.Trending(c.QueryInt("page", 1))
	if err != nil {
		return h.catalogError(c, "Trending", err)
	}
	return response.ResponseOKWithData(c, response.CatalogRetrieved, res)
}

func (h *MovieHandler) Popular(c *fiber.Ctx) error {
	mediaType, ok := mediaTypeParam(c)
	if !ok {
		return response.ResponseError(c, "Invalid mediaType", fiber.StatusBadRequest)
	}
	res, err := h.movieService.Popular(mediaType, c.QueryInt("page", 1))
	if err != nil {
		return h.catalogError(c, "Popular", err)
	}
	return response.ResponseOKWithData(c, response.CatalogRetrieved, res)
}

func (h *MovieHandler) TopRated(c *fiber.Ctx) error {
	mediaType, ok := mediaTypeParam(c)
	if !ok {
		return response.ResponseError(c, "Invalid mediaType", fiber.StatusBadRequest)
	}
	res, err := h.movieService.TopRated(mediaType, c.QueryInt("page", 1))
	if err != nil {
		return h.catalogError(c, "TopRated", err)
	}
	return response.ResponseOKWithData(c, response.CatalogRetrieved, res)
}

func (h *MovieHandler) NowPlaying(c *fiber.Ctx) error {
	res, err := h.movieService.NowPlaying(c.QueryInt("page", 1))
	if err != nil {
		return h.catalogError(c, "NowPlaying", err)
	}
	return response.ResponseOKWithData(c, response.CatalogRetrieved, res)
}

func (h *MovieHandler) Search(c *fiber.Ctx) error {
	query := c.Query("query", "")
	if query == "" {
		return response.ResponseError(c, "Invalid search query", fiber.StatusBadRequest)
	}
	res, err := h.movieService.Search(query, c.QueryInt("page", 1))
	if err != nil {
		return h.catalogError(c, "Search", err)
	}
	return response.ResponseOKWithData(c, response.CatalogRetrieved, res)
}

func (h *MovieHandler) Detail(c *fiber.Ctx) error {
	mediaType, ok := mediaTypeParam(c)
	if !ok {
		return response.ResponseError(c, "Invalid mediaType", fiber.StatusBadRequest)
	}
	mediaId, err := strconv.ParseInt(c.Params("mediaId", ""), 10, 64)
	if err != nil {
		return response.ResponseError(c, "Invalid mediaId", fiber.StatusBadRequest)
	}
	res, err := h.movieService.Detail(mediaType, mediaId)
	if err != nil {
		return h.catalogError(c, "Detail", err)
	}
	return response.ResponseOKWithData(c, response.CatalogRetrieved, res)
}

func (h *MovieHandler) Genres(c *fiber.Ctx) error {
	mediaType, ok := mediaTypeParam(c)
	if !ok {
		return response.ResponseError(c, "Invalid mediaType", fiber.StatusBadRequest)
	}
	res, err := h.movieService.Genres(mediaType)
	if err != nil {
		return h.catalogError(c, "Genres", err)
	}
	return response.ResponseOKWithData(c, response.CatalogRetrieved, res)
}

func (h *MovieHandler) Discover(c *fiber.Ctx) error {
	mediaType, ok := mediaTypeParam(c)
	if !ok {
		return response.ResponseError(c, "Invalid mediaType", fiber.StatusBadRequest)
	}
	res, err := h.movieService.Discover(mediaType, c.QueryInt("page", 1))
	if err != nil {
		return h.catalogError(c, "Discover", err)
	}
	return response.ResponseOKWithData(c, response.CatalogRetrieved, res)
}
