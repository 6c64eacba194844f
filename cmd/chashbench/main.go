// Command chashbench runs a randomized insert/get/update/remove workload
// against a chash.Table and reports per-phase timings as JSON.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/theflywheel/chash"
)

const maxValue = 100

type config struct {
	capacity uint
	keys     int
	keySize  int
	hasher   string
	seed     int64
	out      string
	verbose  bool
}

func parseFlags(args []string, output io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("chashbench", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.UintVar(&cfg.capacity, "capacity", 1024, "number of buckets")
	fs.IntVar(&cfg.keys, "keys", 100_000, "number of distinct keys")
	fs.IntVar(&cfg.keySize, "key-size", 30, "length of each random key")
	fs.StringVar(&cfg.hasher, "hasher", "poly31", "bucket hasher: poly31, fnv1a, xxhash or maphash")
	fs.Int64Var(&cfg.seed, "seed", time.Now().UnixNano(), "random seed")
	fs.StringVar(&cfg.out, "out", "", "write the JSON summary to this file instead of stdout")
	fs.BoolVar(&cfg.verbose, "v", false, "log table lifecycle events")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.capacity == 0 || cfg.capacity > 1<<32-1 {
		return nil, fmt.Errorf("capacity must be between 1 and %d", uint32(1<<32-1))
	}
	if cfg.keys <= 0 || cfg.keySize <= 0 {
		return nil, errors.New("keys and key-size must be positive")
	}
	space := 1
	for i := 0; i < cfg.keySize && space < cfg.keys; i++ {
		space *= 62
	}
	if space < cfg.keys {
		return nil, fmt.Errorf("key-size %d cannot produce %d distinct keys", cfg.keySize, cfg.keys)
	}
	if _, err := hasherByName(cfg.hasher); err != nil {
		return nil, err
	}
	return cfg, nil
}

func hasherByName(name string) (chash.HashFunc, error) {
	switch name {
	case "poly31":
		return chash.Poly31, nil
	case "fnv1a":
		return chash.FNV1a, nil
	case "xxhash":
		return chash.XXHash, nil
	case "maphash":
		return chash.MapHash(), nil
	default:
		return nil, fmt.Errorf("unknown hasher %q", name)
	}
}

// generateAlphanumeric creates a random alphanumeric string of given length
func generateAlphanumeric(rng *rand.Rand, length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rng.Intn(len(charset))]
	}
	return string(result)
}

func run(cfg *config, logger log.FieldLogger) (*BenchmarkSummary, error) {
	hasher, err := hasherByName(cfg.hasher)
	if err != nil {
		return nil, err
	}
	t, err := chash.New(uint32(cfg.capacity), chash.WithHasher(hasher), chash.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	defer t.Destroy()

	rng := rand.New(rand.NewSource(cfg.seed))
	summary := newSummary(cfg.hasher, cfg.seed)

	keys := make([]string, 0, cfg.keys)
	values := make([]int64, 0, cfg.keys)
	start := time.Now()
	for len(keys) < cfg.keys {
		k := generateAlphanumeric(rng, cfg.keySize)
		if t.Exists(k) {
			continue
		}
		v := rng.Int63n(maxValue)
		if err := t.Insert(k, v); err != nil {
			return nil, err
		}
		keys = append(keys, k)
		values = append(values, v)
	}
	r := summary.add("insert", len(keys), time.Since(start))
	logger.Infof("Inserted %d keys (%.2f keys/sec)", len(keys), r.Metrics["ops_per_sec"])
	summary.Stats = t.Stats()

	start = time.Now()
	for i, k := range keys {
		v, err := t.Get(k)
		if err != nil {
			return nil, err
		}
		if v != values[i] {
			return nil, fmt.Errorf("value mismatch for %q: expected %d, got %d", k, values[i], v)
		}
	}
	r = summary.add("get", len(keys), time.Since(start))
	logger.Infof("Verified %d keys (%.2f lookups/sec)", len(keys), r.Metrics["ops_per_sec"])

	start = time.Now()
	for i, k := range keys {
		values[i] = rng.Int63n(1000)
		if err := t.Update(k, values[i]); err != nil {
			return nil, err
		}
	}
	r = summary.add("update", len(keys), time.Since(start))
	logger.Infof("Updated %d keys (%.2f updates/sec)", len(keys), r.Metrics["ops_per_sec"])

	start = time.Now()
	for _, k := range keys {
		if err := t.Remove(k); err != nil {
			return nil, err
		}
		if t.Exists(k) {
			return nil, fmt.Errorf("key %q still present after remove", k)
		}
	}
	r = summary.add("remove", len(keys), time.Since(start))
	logger.Infof("Removed %d keys (%.2f removals/sec)", len(keys), r.Metrics["ops_per_sec"])

	if t.Len() != 0 {
		return nil, fmt.Errorf("table still holds %d entries", t.Len())
	}
	return summary, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	log.SetOutput(os.Stderr)
	if cfg.verbose {
		log.SetLevel(log.DebugLevel)
	}

	summary, err := run(cfg, log.StandardLogger())
	if err != nil {
		log.Fatalf("Workload failed: %v", err)
	}
	if err := summary.write(cfg.out); err != nil {
		log.Fatalf("Failed to write summary: %v", err)
	}
	if cfg.out != "" {
		log.Infof("Benchmark results saved to: %s", cfg.out)
	}
}
