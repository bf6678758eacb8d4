package redis

import (
	"context"
	"encoding/json"

	goredis "github.com/redis/go-redis/v9"

	"github.com/pankajyadav-dev/ocean/internal/domain"
)

// RecentHazardCache keeps the last broadcast payloads so late-connecting
// listeners can catch up without a database query.
type RecentHazardCache struct {
	client *goredis.Client
	key    string
	max    int64
}

func NewRecentHazardCache(r *Redis, max int64) *RecentHazardCache {
	return &RecentHazardCache{
		client: r.Client,
		key:    "hazards:recent",
		max:    max,
	}
}

func (c *RecentHazardCache) Add(ctx context.Context, payload []byte) error {
	pipe := c.client.TxPipeline()
	pipe.LPush(ctx, c.key, payload)
	pipe.LTrim(ctx, c.key, 0, c.max-1)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *RecentHazardCache) Recent(ctx context.Context) ([]domain.BroadcastPayload, error) {
	items, err := c.client.LRange(ctx, c.key, 0, c.max-1).Result()
	if err != nil {
		return nil, err
	}

	payloads := make([]domain.BroadcastPayload, 0, len(items))
	for _, raw := range items {
		var p domain.BroadcastPayload
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, err
		}
		payloads = append(payloads, p)
	}
	return payloads, nil
}
