package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenStore registra os jti emitidos por usuário. Um token só é aceito
// enquanto seu jti permanecer no store; o logout revoga todos de uma vez.
type TokenStore interface {
	Save(ctx context.Context, userID uint, jti string, ttl time.Duration) error
	Exists(ctx context.Context, userID uint, jti string) (bool, error)
	RevokeAll(ctx context.Context, userID uint) error
}

type RedisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client}
}

func tokensKey(userID uint) string {
	return fmt.Sprintf("auth:tokens:%d", userID)
}

func (s *RedisTokenStore) Save(ctx context.Context, userID uint, jti string, ttl time.Duration) error {
	key := tokensKey(userID)

	if err := s.client.SAdd(ctx, key, jti).Err(); err != nil {
		return err
	}
	// TTL do conjunto acompanha o token mais recente; os JWTs expiram
	// sozinhos, então tokens antigos nunca sobrevivem ao próprio exp
	return s.client.Expire(ctx, key, ttl).Err()
}

func (s *RedisTokenStore) Exists(ctx context.Context, userID uint, jti string) (bool, error) {
	return s.client.SIsMember(ctx, tokensKey(userID), jti).Result()
}

func (s *RedisTokenStore) RevokeAll(ctx context.Context, userID uint) error {
	return s.client.Del(ctx, tokensKey(userID)).Err()
}

var _ TokenStore = (*RedisTokenStore)(nil)
