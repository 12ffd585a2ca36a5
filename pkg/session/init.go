package session

import (
	"github.com/redis/go-redis/v9"
)

// Default is the process-wide session store, set once at startup.
var Default Store

func Init(client *redis.Client) {
	Default = NewRedisStore(client)
}

func InitMemory() {
	Default = NewMemoryStore()
}
