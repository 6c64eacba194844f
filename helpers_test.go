package chash_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theflywheel/chash"
)

const maxValue = 100

// generateAlphanumeric creates a random alphanumeric string of given length
func generateAlphanumeric(rng *rand.Rand, length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rng.Intn(len(charset))]
	}
	return string(result)
}

// randomKeys returns amount distinct random keys, skipping any in exclude.
func randomKeys(rng *rand.Rand, amount, size int, exclude []string) []string {
	seen := make(map[string]struct{}, amount+len(exclude))
	for _, k := range exclude {
		seen[k] = struct{}{}
	}
	keys := make([]string, 0, amount)
	for len(keys) < amount {
		k := generateAlphanumeric(rng, size)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

func randomValues(rng *rand.Rand, amount int, max int64) []int64 {
	values := make([]int64, amount)
	for i := range values {
		values[i] = rng.Int63n(max)
	}
	return values
}

type randomTable struct {
	table  *chash.Table
	keys   []string
	values []int64
}

// newRandomTable fills a table of the given capacity with random keys and
// values, and destroys it when the test ends.
func newRandomTable(t *testing.T, seed int64, capacity uint32, amountKeys, keySize int, opts ...chash.Option) *randomTable {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))

	table, err := chash.New(capacity, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = table.Destroy() })

	rt := &randomTable{
		table:  table,
		keys:   randomKeys(rng, amountKeys, keySize, nil),
		values: randomValues(rng, amountKeys, maxValue),
	}
	for i, k := range rt.keys {
		require.NoError(t, table.Insert(k, rt.values[i]))
	}
	return rt
}
