package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

var RedisClient *redis.Client

// ConnectRedis opens the Redis client used for single-use sign-in tokens.
func ConnectRedis() (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     GetEnvDefault("REDIS_ADDR", "localhost:6379"),
		Username: GetEnv("REDIS_USER"),
		Password: GetEnv("REDIS_PASSWORD"),
		DB:       0,
	})

	res, err := rdb.Ping(Ctx).Result()
	if err != nil {
		return nil, err
	}

	log.Println("Successfully connected to Redis:", res)
	RedisClient = rdb
	return rdb, nil
}
