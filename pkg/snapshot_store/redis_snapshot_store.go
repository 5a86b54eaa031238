package snapshot_store

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/go-redis/redis/v9"

	"streamrun/pkg/common_errors"
	"streamrun/pkg/hashfuncs"
	"streamrun/pkg/redis_client"
)

// RedisSnapshotStore shards snapshots across the configured redis instances
// by key hash. Per task it also keeps a list of stored epochs so recovery can
// find the latest one.
type RedisSnapshotStore struct {
	rdb_arr []*redis.Client
}

var _ = SnapshotStore(&RedisSnapshotStore{})

func NewRedisSnapshotStore() *RedisSnapshotStore {
	return &RedisSnapshotStore{rdb_arr: redis_client.GetRedisClients()}
}

func (rs *RedisSnapshotStore) pick(key string) *redis.Client {
	idx := hashfuncs.StringHasher{}.HashSum64(key) % uint64(len(rs.rdb_arr))
	return rs.rdb_arr[idx]
}

func (rs *RedisSnapshotStore) StoreSnapshot(ctx context.Context, taskID string, epoch uint32, payload []byte) error {
	err := rs.pick(taskID).RPush(ctx, taskID, epoch).Err()
	if err != nil {
		return err
	}
	key := snapKey(taskID, epoch)
	fmt.Fprintf(os.Stderr, "store snapshot key: %s\n", key)
	return rs.pick(key).Set(ctx, key, payload, 0).Err()
}

func (rs *RedisSnapshotStore) GetSnapshot(ctx context.Context, taskID string, epoch uint32) ([]byte, error) {
	key := snapKey(taskID, epoch)
	payload, err := rs.pick(key).Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, common_errors.ErrSnapshotNotFound
	}
	return payload, err
}

func (rs *RedisSnapshotStore) LatestEpoch(ctx context.Context, taskID string) (uint32, error) {
	epochStrs, err := rs.pick(taskID).LRange(ctx, taskID, -1, -1).Result()
	if err != nil {
		return 0, err
	}
	if len(epochStrs) == 0 {
		return 0, common_errors.ErrSnapshotNotFound
	}
	epoch, err := strconv.ParseUint(epochStrs[0], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(epoch), nil
}
