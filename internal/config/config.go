// Package config loads service configuration from the environment.
package config

import (
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

type KafkaCfg struct {
	Brokers []string
	Topic   string
	GroupID string
}

type Config struct {
	Addr           string
	LogLevel       string
	RedisAddr      string
	CacheOpTimeout time.Duration
	GridCacheTTL   time.Duration
	LRUSize        int
	GridMaxCells   int
	TallyLevels    []int
	Kafka          KafkaCfg
}

func FromEnv() Config {
	return Config{
		Addr:           getenv("ADDR", ":8090"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		RedisAddr:      getenv("REDIS_ADDR", "localhost:6379"),
		CacheOpTimeout: getduration("CACHE_OP_TIMEOUT", 250*time.Millisecond),
		GridCacheTTL:   getduration("GRID_CACHE_TTL", 10*time.Minute),
		LRUSize:        getint("LRU_SIZE", 512),
		GridMaxCells:   getint("GRID_MAX_CELLS", 20000),
		TallyLevels:    getlevels("TALLY_LEVELS", []int{3}),
		Kafka: KafkaCfg{
			Brokers: splitCSV(getenv("KAFKA_BROKERS", "localhost:9092")),
			Topic:   getenv("KAFKA_TOPIC", "mesh-observations"),
			GroupID: getenv("KAFKA_GROUP_ID", "mesh-tally"),
		},
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// getlevels parses a CSV of mesh levels like "1,3,5", dropping anything
// outside 1..6 and duplicates.
func getlevels(k string, def []int) []int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	seen := map[int]bool{}
	var out []int
	for _, p := range strings.Split(v, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 || n > 6 || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	if len(out) == 0 {
		return def
	}
	sort.Ints(out)
	return out
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
