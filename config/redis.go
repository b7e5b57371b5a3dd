package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ConnectRedis kết nối đến Redis
func ConnectRedis() (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     GetEnvDefault("REDIS_ADDR", "localhost:6379"),
		Username: os.Getenv("REDIS_USER"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	res, err := rdb.Ping(Ctx).Result()
	if err != nil {
		return nil, err
	}

	log.Println("Connected to Redis:", res)
	return rdb, nil
}
