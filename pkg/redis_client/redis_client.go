package redis_client

import (
	"os"
	"strings"

	"github.com/go-redis/redis/v9"
)

// REDIS_ADDR lists the instances to shard snapshot keys across, comma
// separated. Defaults to a single local instance.
func redisAddrs() []string {
	raw := os.Getenv("REDIS_ADDR")
	if raw == "" {
		return []string{"127.0.0.1:6379"}
	}
	addrs := make([]string, 0, strings.Count(raw, ",")+1)
	for _, addr := range strings.Split(raw, ",") {
		addr = strings.TrimSpace(addr)
		if addr != "" {
			addrs = append(addrs, addr)
		}
	}
	return addrs
}

func GetRedisClients() []*redis.Client {
	addrs := redisAddrs()
	clients := make([]*redis.Client, len(addrs))
	for i, addr := range addrs {
		clients[i] = redis.NewClient(&redis.Options{
			Addr: addr,
			// snapshot traffic is a few large blobs per epoch, not many
			// small commands
			PoolSize: 4,
		})
	}
	return clients
}
