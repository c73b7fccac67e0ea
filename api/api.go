package api

import (
	"cinex_api/api/middleware"
	"cinex_api/configs"
	"cinex_api/internal/handler"
	errorHandler "cinex_api/pkg/error"
	"cinex_api/pkg/response"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

var router *fiber.App

func InitRouter(
	authHandler handler.IAuthHandler,
	userHandler handler.IUserHandler,
	movieHandler handler.IMovieHandler,
	authMiddleware fiber.Handler,
) {
	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if code >= 500 {
			errorMessage := fmt.Sprintf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
			errorHandler.SaveError(errorMessage, err)
		}

		message := response.ServerError
		if !configs.GetConfigs().Production {
			// Development mode only; clients never see internals in production.
			message = err.Error()
		}
		return response.ResponseError(c, message, code)
	}

	router = fiber.New(fiber.Config{
		UnescapePath: true,
		BodyLimit:    10 * 1024,
		ErrorHandler: defaultErrorHandler,
	})

	router.Use(helmet.New())
	router.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return middleware.LocalhostRegex.MatchString(origin) ||
				slices.Index(configs.GetConfigs().CorsAllowedOrigins, origin) != -1
		},
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Authorization",
	}))
	router.Use(recover.New())
	router.Use(compress.New())

	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	router.Use(limiter.New(limiter.Config{
		Max:          200,
		Expiration:   15 * time.Minute,
		LimitReached: limitReached,
	}))

	// Tighter limit on credential endpoints to slow brute forcing.
	authLimiter := limiter.New(limiter.Config{
		Max:          20,
		Expiration:   15 * time.Minute,
		LimitReached: limitReached,
	})

	authRoutes := router.Group("auth", authLimiter)
	{
		authRoutes.Post("/signup", authHandler.Signup)
		authRoutes.Post("/login", authHandler.Login)
		authRoutes.Post("/logout", authMiddleware, authHandler.Logout)
		authRoutes.Get("/me", authMiddleware, authHandler.GetMe)
	}

	userRoutes := router.Group("user", authMiddleware)
	{
		userRoutes.Get("/profile", userHandler.GetProfile)
		userRoutes.Patch("/profile", userHandler.UpdateProfile)
		userRoutes.Get("/watchlist", userHandler.GetWatchlist)
		userRoutes.Post("/watchlist", userHandler.AddToWatchlist)
		userRoutes.Delete("/watchlist/:mediaId", userHandler.RemoveFromWatchlist)
	}

	movieRoutes := router.Group("movie", authMiddleware)
	{
		movieRoutes.Get("/trending", movieHandler.Trending)
		movieRoutes.Get("/now_playing", movieHandler.NowPlaying)
		movieRoutes.Get("/search", movieHandler.Search)
		movieRoutes.Get("/:mediaType/popular", movieHandler.Popular)
		movieRoutes.Get("/:mediaType/top_rated", movieHandler.TopRated)
		movieRoutes.Get("/:mediaType/genres", movieHandler.Genres)
		movieRoutes.Get("/:mediaType/discover", movieHandler.Discover)
		movieRoutes.Get("/:mediaType/:mediaId", movieHandler.Detail)
	}

	router.Get("/", HealthCheck)

	router.Use(func(c *fiber.Ctx) error {
		message := fmt.Sprintf("Route %s %s not found.", c.Method(), c.Path())
		return response.ResponseError(c, message, fiber.StatusNotFound)
	})
}

func Start(addr string) error {
	return router.Listen(addr)
}

func limitReached(c *fiber.Ctx) error {
	return response.ResponseError(c, response.TooManyRequests, fiber.StatusTooManyRequests)
}

// HealthCheck godoc
//
//	@Summary		Show the status of server.
//	@Description	get the status of server.
//	@Tags			System
//	@Success		200	{object}	response.ResponseModel
//	@Router			/ [get]
func HealthCheck(c *fiber.Ctx) error {
	return response.ResponseOKWithData(c, "CineX API is running.", fiber.Map{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
