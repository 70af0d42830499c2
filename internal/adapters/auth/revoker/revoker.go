// Package revoker guarda los jti de sesiones cerradas hasta que expiran.
package revoker

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Memory sirve para una sola instancia.
type Memory struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	now    func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		tokens: make(map[string]time.Time),
		now:    time.Now,
	}
}

func (m *Memory) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 || tokenID == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	// los jti vencidos que nadie volvió a consultar se limpian acá
	for id, expiry := range m.tokens {
		if now.After(expiry) {
			delete(m.tokens, id)
		}
	}
	m.tokens[tokenID] = now.Add(ttl)
	return nil
}

func (m *Memory) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	expiry, ok := m.tokens[tokenID]
	if !ok {
		return false, nil
	}
	if m.now().After(expiry) {
		delete(m.tokens, tokenID)
		return false, nil
	}
	return true, nil
}

// Redis comparte las revocaciones entre instancias; cada key vence con el token.
type Redis struct {
	client *redis.Client
}

func NewRedis(addr, password string, db int) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (r *Redis) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 || tokenID == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return r.client.Set(ctx, revocationKey(tokenID), "1", ttl).Err()
}

func (r *Redis) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	n, err := r.client.Exists(ctx, revocationKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func revocationKey(tokenID string) string {
	return "adoptme:revoked:" + tokenID
}
