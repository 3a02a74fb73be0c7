package store

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps every collection as one Redis string key. This is the
// default backend: the data volume is tens to low hundreds of records per
// collection, so GET/SET of the whole document is cheap and gives the
// required atomic replacement for free.
type RedisStore struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisStore wraps an already connected client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		Client: client,
		Ctx:    context.Background(),
	}
}

func (s *RedisStore) GetCollection(name string) ([]byte, error) {
	data, err := s.Client.Get(s.Ctx, name).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisStore) SetCollection(name string, data []byte) error {
	return s.Client.Set(s.Ctx, name, data, 0).Err()
}

func (s *RedisStore) GetFlag(name string) (bool, error) {
	v, err := s.Client.Get(s.Ctx, name).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

func (s *RedisStore) SetFlag(name string, value bool) error {
	return s.Client.Set(s.Ctx, name, strconv.FormatBool(value), 0).Err()
}
