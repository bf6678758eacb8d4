package redis

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/pankajyadav-dev/ocean/internal/domain"
)

// BroadcastChannel is the pub/sub channel every connected listener
// subscribes to; the socket gateway relays it under the same event name.
const BroadcastChannel = "hazard-reported"

// HazardBroadcast pushes real-time hazard events to all connected listeners
// via redis pub/sub. Broadcast is not recipient-scoped.
type HazardBroadcast struct {
	client  *redis.Client
	channel string
	cache   *RecentHazardCache
}

func NewHazardBroadcast(client *redis.Client, channel string, cache *RecentHazardCache) *HazardBroadcast {
	return &HazardBroadcast{client: client, channel: channel, cache: cache}
}

func (b *HazardBroadcast) Publish(ctx context.Context, payload domain.BroadcastPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if err := b.client.Publish(ctx, b.channel, data).Err(); err != nil {
		return err
	}
	// Cache append is best-effort: listeners already got the event.
	if b.cache != nil {
		_ = b.cache.Add(ctx, data)
	}
	return nil
}
