package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Hàm lấy data từ Redis
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return err
	}
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(cachedData), target)
}

// Hàm lưu dữ liệu vào Redis
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return rdb.Set(ctx, key, dataJSON, ttl).Err()
}

// Hàm xóa cache Redis
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return rdb.Del(ctx, keys...).Err()
}
