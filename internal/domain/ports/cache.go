package ports

import (
	"context"
	"time"
)

// Cache define a interface do cache de leitura (Redis em produção).
// Implementações devem degradar para no-op quando o backend está
// indisponível: um cache fora do ar nunca derruba uma leitura.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
