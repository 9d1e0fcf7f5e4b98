package rdx

import (
	"os"

	"styledecor/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Init connects the redis client. Called from main after .env is loaded;
// redis is best-effort here (token bookkeeping), so callers must tolerate
// a nil Conn and write errors.
func Init() {
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

func RdxHset(group, key, value string) error {
	return Conn.HSet(globals.Ctx, group, key, value).Err()
}

func RdxHget(group, key string) (string, error) {
	return Conn.HGet(globals.Ctx, group, key).Result()
}

func RdxHdel(group, key string) error {
	return Conn.HDel(globals.Ctx, group, key).Err()
}

func Close() error {
	if Conn == nil {
		return nil
	}
	return Conn.Close()
}
