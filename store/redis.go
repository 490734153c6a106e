package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
)

// RedisStore 是 Redis 实现的 KV 存储，用于推荐结果缓存。
// 生产环境常用，支持持久化、集群、哨兵等。
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

// NewRedisStoreWithClient 复用外部已建好的客户端。
func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Name() string { return "redis" }

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, core.ErrStoreNotFound
	}
	return val, err
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl ...int) error {
	var expiration time.Duration
	if len(ttl) > 0 && ttl[0] > 0 {
		expiration = time.Duration(ttl[0]) * time.Second
	}
	return r.client.Set(ctx, key, value, expiration).Err()
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// GetJSON 读取并反序列化缓存值到 out。
func (r *RedisStore) GetJSON(ctx context.Context, key string, out any) error {
	raw, err := r.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// SetJSON 序列化 value 后写入缓存，ttl 单位为秒。
func (r *RedisStore) SetJSON(ctx context.Context, key string, value any, ttl int) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Set(ctx, key, raw, ttl)
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

var _ core.Store = (*RedisStore)(nil)
