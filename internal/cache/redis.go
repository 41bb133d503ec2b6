package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient caches AI coach output so repeated dashboard loads do not
// re-bill the gateway: goal summaries by user with a TTL, and chat
// conversation histories by conversation id.
type RedisClient struct {
	client *redis.Client
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func summaryKey(userID uint) string {
	return fmt.Sprintf("coach:summary:%d", userID)
}

func conversationKey(conversationID string) string {
	return fmt.Sprintf("coach:chat:%s", conversationID)
}

// StoreSummary caches a generated goal summary for the user.
func (r *RedisClient) StoreSummary(ctx context.Context, userID uint, summary string, ttl time.Duration) error {
	if err := r.client.Set(ctx, summaryKey(userID), summary, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store summary in Redis: %w", err)
	}
	return nil
}

// GetSummary returns the cached summary and whether one exists.
func (r *RedisClient) GetSummary(ctx context.Context, userID uint) (string, bool, error) {
	data, err := r.client.Get(ctx, summaryKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get summary from Redis: %w", err)
	}
	return data, true, nil
}

// InvalidateSummary drops the cached summary, used after new log writes so
// the next summary reflects current data.
func (r *RedisClient) InvalidateSummary(ctx context.Context, userID uint) error {
	return r.client.Del(ctx, summaryKey(userID)).Err()
}

// StoreConversation persists a chat history (role/content pairs) under the
// conversation id with a sliding expiry.
func (r *RedisClient) StoreConversation(ctx context.Context, conversationID string, messages interface{}, ttl time.Duration) error {
	jsonData, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to marshal conversation: %w", err)
	}
	if err := r.client.Set(ctx, conversationKey(conversationID), jsonData, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store conversation in Redis: %w", err)
	}
	return nil
}

// GetConversation loads a chat history into dest; ok is false when the
// conversation is unknown or expired.
func (r *RedisClient) GetConversation(ctx context.Context, conversationID string, dest interface{}) (bool, error) {
	data, err := r.client.Get(ctx, conversationKey(conversationID)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get conversation from Redis: %w", err)
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal conversation: %w", err)
	}
	return true, nil
}

// GetStatus reports pool statistics for the debug endpoint.
func (r *RedisClient) GetStatus(ctx context.Context) (map[string]interface{}, error) {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	stats := r.client.PoolStats()
	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
	}, nil
}
