package session

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "session:"

// RedisStore Redis会话存储, 多实例部署时共享会话
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, sid string) (Data, bool, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+sid).Result()
	if err == redis.Nil {
		return Data{}, false, nil
	}
	if err != nil {
		return Data{}, false, err
	}

	var data Data
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return Data{}, false, err
	}
	return data, true, nil
}

func (s *RedisStore) Set(ctx context.Context, sid string, data Data) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisKeyPrefix+sid, raw, TTL).Err()
}

func (s *RedisStore) Touch(ctx context.Context, sid string) error {
	return s.client.Expire(ctx, redisKeyPrefix+sid, TTL).Err()
}

func (s *RedisStore) Destroy(ctx context.Context, sid string) error {
	return s.client.Del(ctx, redisKeyPrefix+sid).Err()
}
