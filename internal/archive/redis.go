package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vk/roomwalk/internal/worldmap"
)

// keyPrefix namespaces archived maps in the shared keyspace.
const keyPrefix = "roomwalk:map:"

// Redis stores archived maps as one Redis hash per map: a field per room
// id holding the JSON room record, plus a meta field. This mirrors the
// layout the room server itself uses for its source data.
type Redis struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedis connects to the Redis instance at addr and verifies the
// connection with a ping.
func NewRedis(ctx context.Context, addr string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &Redis{client: client, now: time.Now}, nil
}

// SaveMap writes the whole map atomically, replacing any previous archive
// under the same name.
func (r *Redis) SaveMap(ctx context.Context, name string, g *worldmap.Graph) error {
	fields, err := EncodeRooms(g)
	if err != nil {
		return err
	}
	meta, err := EncodeMeta(g, r.now())
	if err != nil {
		return err
	}

	values := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		values[k] = v
	}
	values[metaField] = meta

	key := keyPrefix + name
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, values)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to archive map %q: %w", name, err)
	}
	return nil
}

// Close releases the connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}
