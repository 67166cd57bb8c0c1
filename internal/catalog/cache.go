package catalog

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = 5 * time.Minute

// Cache is a Redis-backed QueryCache. Entries are short-lived JSON blobs so
// a dataset reload only serves stale results until the TTL passes.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ QueryCache = (*Cache)(nil)

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) key(q Query) string {
	round := q.Round
	if round == "" {
		round = RoundAll
	}
	category := q.Category
	if category == "" {
		category = CategoryAll
	}
	return strings.Join([]string{
		"catalog",
		round,
		category,
		strings.ToLower(strings.TrimSpace(q.Search)),
	}, ":")
}

func (c *Cache) Get(ctx context.Context, q Query) ([]Question, error) {
	data, err := c.client.Get(ctx, c.key(q)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *Cache) Set(ctx context.Context, q Query, questions []Question) error {
	data, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(q), data, c.ttl).Err()
}
