package signup

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const redisUserPrefix = "allergygenie:user:"

type RedisStore struct {
	client *redis.Client
	prefix string
}

//NewRedisStore connects and pings before handing the store back.
func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &RedisStore{client: client, prefix: redisUserPrefix}, nil
}

func (r *RedisStore) UserExists(ctx context.Context, email string) (bool, error) {
	n, err := r.client.Exists(ctx, r.prefix+email).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

//SaveUser writes with SETNX so a key that appeared after UserExists is not overwritten.
func (r *RedisStore) SaveUser(ctx context.Context, u User) error {
	payload, err := json.Marshal(u)
	if err != nil {
		return err
	}
	ok, err := r.client.SetNX(ctx, r.prefix+u.Email, payload, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrDuplicateAccount
	}
	return nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
