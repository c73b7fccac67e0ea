package service

import (
	"cinex_api/db/redis"
	errorHandler "cinex_api/pkg/error"
	"context"
	"errors"
	"fmt"
	"time"
)

const catalogCachePrefix = "tmdb:"

//------------------------------------------
//------------------------------------------

func getCatalogCache(key string) (string, error) {
	result, err := redis.GetRedis(context.Background(), catalogCachePrefix+key)
	if err != nil && err.Error() != "redis: nil" {
		return "", err
	}
	return result, nil
}

func setCatalogCache(key string, value string, duration time.Duration) error {
	err := redis.SetRedis(context.Background(), catalogCachePrefix+key, value, duration)
	if err != nil && !errors.Is(err, redis.ErrNotConnected) {
		errorMessage := fmt.Sprintf("Redis Error on saving catalog page: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
	return err
}
