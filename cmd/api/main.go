package main

import (
	"cinex_api/api"
	"cinex_api/api/middleware"
	"cinex_api/configs"
	"cinex_api/db/mongodb"
	"cinex_api/db/redis"
	"cinex_api/internal/handler"
	"cinex_api/internal/repository"
	"cinex_api/internal/service"
	"cinex_api/internal/tmdb"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
)

// @title						CineX API
// @version					1.0
// @description				Auth, watchlist and catalog backend of the CineX project.
// @host						api.cinex.site
// @BasePath					/
// @schemes					https
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and the session token.
// @Accept						json
// @Produce					json
func main() {
	configs.LoadEnvVariables()

	if configs.GetConfigs().AccessTokenSecret == "" {
		log.Fatalln("ACCESS_TOKEN_SECRET is not configured")
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              configs.GetConfigs().SentryDns,
		Release:          configs.GetConfigs().SentryRelease,
		TracesSampleRate: 1,
		EnableTracing:    true,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentry.Flush(2 * time.Second)

	go redis.ConnectRedis()

	mongoDB, err := mongodb.NewDatabase()
	if err != nil {
		log.Fatalf("could not initialize mongodb database connection: %s", err)
	}
	if err := mongoDB.EnsureIndexes(); err != nil {
		log.Fatalf("could not create mongodb indexes: %s", err)
	}

	userRepo := repository.NewUserRepository(mongoDB.GetDB())

	authSvc := service.NewAuthService(userRepo)
	authHandler := handler.NewAuthHandler(authSvc)

	userSvc := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userSvc)

	tmdbClient := tmdb.NewClient(configs.GetConfigs().TmdbApiKey, configs.GetConfigs().TmdbApiUrl)
	movieSvc := service.NewMovieService(tmdbClient)
	movieHandler := handler.NewMovieHandler(movieSvc)

	authMiddleware := middleware.AuthMiddleware(userRepo)

	api.InitRouter(authHandler, userHandler, movieHandler, authMiddleware)
	if err := api.Start("0.0.0.0:" + configs.GetConfigs().Port); err != nil {
		log.Fatalln(err)
	}
}
