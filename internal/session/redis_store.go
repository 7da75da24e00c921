/* Redis 기반 사용자 세션 캐시, 키 형식: "user-session:" + userId */

package session

import (
	"context"
	"fmt"
	"log"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const keyPrefix = "user-session:"

// service.SessionStore 구현
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	log.Printf("NewRedisStore(): connected to redis at %s (db %d)", addr, db)

	return &RedisStore{rdb: rdb}, nil
}

// 세션 기록, 만료는 두지 않음 (last write wins)
func (s *RedisStore) Set(ctx context.Context, userID, token string) error {
	return s.rdb.Set(ctx, keyPrefix+userID, token, 0).Err()
}

// 저장된 토큰 조회, 세션이 없으면 빈 문자열
func (s *RedisStore) Get(ctx context.Context, userID string) (string, error) {
	token, err := s.rdb.Get(ctx, keyPrefix+userID).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// 없는 키를 지워도 에러가 아님 (멱등)
func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, keyPrefix+userID).Err()
}
