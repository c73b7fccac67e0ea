package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type ConfigStruct struct {
	Port                      string
	MongodbDatabaseUrl        string
	MongodbDatabaseName       string
	RedisUrl                  string
	RedisPassword             string
	WaitForRedisConnectionSec int
	AccessTokenSecret         string
	PreviousAccessTokenSecret string
	AccessTokenExpire         time.Duration
	CookieSecure              bool
	CookieSameSite            string
	Production                bool
	CorsAllowedOrigins        []string
	SentryDns                 string
	SentryRelease             string
	PrintErrors               bool
	TmdbApiKey                string
	TmdbApiUrl                string
	TmdbCacheTtl              time.Duration
}

var configs = ConfigStruct{}

func GetConfigs() ConfigStruct {
	return configs
}

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	configs.Port = os.Getenv("PORT")
	configs.MongodbDatabaseUrl = os.Getenv("MONGODB_DATABASE_URL")
	configs.MongodbDatabaseName = os.Getenv("MONGODB_DATABASE_NAME")
	configs.RedisUrl = os.Getenv("REDIS_URL")
	configs.RedisPassword = os.Getenv("REDIS_PASSWORD")
	configs.WaitForRedisConnectionSec, _ = strconv.Atoi(os.Getenv("WAIT_REDIS_CONNECTION_SEC"))

	configs.AccessTokenSecret = os.Getenv("ACCESS_TOKEN_SECRET")
	configs.PreviousAccessTokenSecret = os.Getenv("PREVIOUS_ACCESS_TOKEN_SECRET")
	expireDays, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_EXPIRE_DAYS"))
	if err != nil || expireDays <= 0 {
		expireDays = 7
	}
	configs.AccessTokenExpire = time.Duration(expireDays) * 24 * time.Hour

	configs.Production = os.Getenv("APP_ENV") == "production"
	configs.CookieSecure = os.Getenv("COOKIE_SECURE") == "true" || configs.Production
	configs.CookieSameSite = os.Getenv("COOKIE_SAME_SITE")
	if configs.CookieSameSite == "" {
		configs.CookieSameSite = "Lax"
	}

	configs.CorsAllowedOrigins = strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), "---")
	for i := range configs.CorsAllowedOrigins {
		configs.CorsAllowedOrigins[i] = strings.TrimSpace(configs.CorsAllowedOrigins[i])
	}

	configs.SentryDns = os.Getenv("SENTRY_DNS")
	configs.SentryRelease = os.Getenv("SENTRY_RELEASE")
	configs.PrintErrors = os.Getenv("PRINT_ERRORS") == "true"

	configs.TmdbApiKey = os.Getenv("TMDB_API_KEY")
	configs.TmdbApiUrl = os.Getenv("TMDB_API_URL")
	if configs.TmdbApiUrl == "" {
		configs.TmdbApiUrl = "https://api.themoviedb.org/3"
	}
	cacheTtlMin, err := strconv.Atoi(os.Getenv("TMDB_CACHE_TTL_MIN"))
	if err != nil || cacheTtlMin <= 0 {
		cacheTtlMin = 60
	}
	configs.TmdbCacheTtl = time.Duration(cacheTtlMin) * time.Minute
}
