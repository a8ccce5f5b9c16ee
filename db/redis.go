// api/db/redis.go
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/community/api/logging"
)

var RedisClient *redis.Client

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

// CacheJSON stores value under key with the default cache TTL.
func CacheJSON(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	if err := RedisClient.Set(ctx, key, payload, defaultTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache %s: %w", key, err)
	}

	logger.Debug("Value cached successfully", zap.String("key", key))
	return nil
}

// GetCachedJSON decodes the value under key into dest. A miss returns
// false with no error.
func GetCachedJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	payload, err := RedisClient.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Debug("Key not found in cache", zap.String("key", key))
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}

	logger.Debug("Value retrieved from cache", zap.String("key", key))
	return true, nil
}

func DeleteCached(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := RedisClient.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete %v from cache: %w", keys, err)
	}
	logger.Debug("Keys deleted from cache", zap.Strings("keys", keys))
	return nil
}

func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}

// ErrLockNotHeld is returned by UnlockResource when the lock expired or was
// taken over by another holder before release.
var ErrLockNotHeld = errors.New("lock is no longer held")

var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func lockKey(resourceName string) string {
	return fmt.Sprintf("lock:%s", resourceName)
}

// LockResource takes the lock under a fresh token. Only the holder of the
// token can release it.
func LockResource(ctx context.Context, resourceName string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	locked, err := RedisClient.SetNX(ctx, lockKey(resourceName), token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to acquire lock: %w", err)
	}
	logger.Debug("Lock acquisition attempt",
		zap.String("resource", resourceName),
		zap.Bool("locked", locked))
	if !locked {
		return "", false, nil
	}
	return token, true, nil
}

func UnlockResource(ctx context.Context, resourceName, token string) error {
	return releaseLock(ctx, RedisClient, lockKey(resourceName), token)
}

func releaseLock(ctx context.Context, client redis.Scripter, key, token string) error {
	released, err := unlockScript.Run(ctx, client, []string{key}, token).Int()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	if released == 0 {
		return fmt.Errorf("%w: %s", ErrLockNotHeld, key)
	}
	logger.Debug("Lock released", zap.String("key", key))
	return nil
}

// PingRedis is used by the readiness check.
func PingRedis(ctx context.Context) error {
	if RedisClient == nil {
		return fmt.Errorf("redis not initialised")
	}
	return RedisClient.Ping(ctx).Err()
}
