package chash

import (
	"fmt"
	"io"
)

// Processor is called for each entry by ForEach. Returning false stops the walk.
type Processor func(key string, value int64) bool

// ForEach calls fn for every entry, bucket by bucket in index order and
// within a bucket in chain order. Shadowed duplicates are visited too.
func (t *Table) ForEach(fn Processor) {
	for _, chain := range t.buckets {
		for i := len(chain) - 1; i >= 0; i-- {
			if !fn(chain[i].key, chain[i].value) {
				return
			}
		}
	}
}

// Keys returns every key in ForEach order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, t.size)
	t.ForEach(func(key string, _ int64) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// BucketLen returns the chain length of bucket i, or 0 if i is out of range.
func (t *Table) BucketLen(i uint32) int {
	if i >= uint32(len(t.buckets)) {
		return 0
	}
	return len(t.buckets[i])
}

// Stats describes how entries are spread over the buckets.
type Stats struct {
	Capacity     uint32  `json:"capacity"`
	Entries      int     `json:"entries"`
	UsedBuckets  int     `json:"used_buckets"`
	LongestChain int     `json:"longest_chain"`
	LoadFactor   float64 `json:"load_factor"`
}

func (t *Table) Stats() Stats {
	s := Stats{Capacity: t.capacity, Entries: t.size}
	for _, chain := range t.buckets {
		if len(chain) == 0 {
			continue
		}
		s.UsedBuckets++
		if len(chain) > s.LongestChain {
			s.LongestChain = len(chain)
		}
	}
	s.LoadFactor = float64(t.size) / float64(t.capacity)
	return s
}

// Print writes a human-readable dump of the table: a header per bucket
// followed by one {"key": value} line per entry in chain order.
func (t *Table) Print(w io.Writer) error {
	if t.destroyed {
		return newTableError("print", "", ErrDestroyed)
	}
	for x, chain := range t.buckets {
		if _, err := fmt.Fprintf(w, "=====BUCKET %d=====\n", x); err != nil {
			return fmt.Errorf("failed to write bucket %d: %w", x, err)
		}
		if len(chain) == 0 {
			if _, err := io.WriteString(w, "{{{EMPTY}}}\n"); err != nil {
				return fmt.Errorf("failed to write bucket %d: %w", x, err)
			}
			continue
		}
		for i := len(chain) - 1; i >= 0; i-- {
			if _, err := fmt.Fprintf(w, "{\"%s\": %d}\n", chain[i].key, chain[i].value); err != nil {
				return fmt.Errorf("failed to write bucket %d: %w", x, err)
			}
		}
	}
	return nil
}
