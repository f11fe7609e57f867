package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/miyaru/miyaru-backend/internal/domain/ports"
	"github.com/miyaru/miyaru-backend/internal/infrastructure/config"
)

// Redis implementa ports.Cache sobre go-redis. Quando o servidor está
// indisponível na inicialização o client fica nil e todas as operações
// viram no-op: o cache nunca derruba uma leitura.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger ports.Logger
}

// NewRedis conecta ao Redis configurado; addr vazio desliga o cache
func NewRedis(cfg *config.RedisConfig, logger ports.Logger) *Redis {
	ttl := time.Duration(cfg.TTL) * time.Second
	if ttl <= 0 {
		ttl = 60 * time.Second
	}

	if cfg.Addr == "" {
		logger.Info("redis not configured, cache disabled")
		return &Redis{client: nil, ttl: ttl, logger: logger}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, bypassing cache", "error", err)
		_ = client.Close()
		return &Redis{client: nil, ttl: ttl, logger: logger}
	}

	logger.Info("redis connected", "addr", cfg.Addr)
	return &Redis{client: client, ttl: ttl, logger: logger}
}

func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if r.client == nil {
		return false, nil
	}

	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = r.ttl
	}

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, b, ttl).Err()
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, key).Err()
}
