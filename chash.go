package chash

import (
	"strings"

	"github.com/sirupsen/logrus"
)

type entry struct {
	key   string
	value int64
}

// Table is a chained hash table from string keys to int64 values with a
// fixed number of buckets.
//
// Each bucket holds its chain as a slice in insertion order; the head of the
// chain (the most recently inserted entry) is the last element. Table is not
// safe for concurrent use.
type Table struct {
	buckets   [][]entry
	capacity  uint32
	size      int
	hasher    HashFunc
	policy    DuplicatePolicy
	log       logrus.FieldLogger
	destroyed bool
}

// New creates a table with capacity empty buckets.
func New(capacity uint32, opts ...Option) (*Table, error) {
	if capacity == 0 {
		return nil, newTableError("create", "", ErrInvalidCapacity)
	}

	t := &Table{
		capacity: capacity,
		hasher:   Poly31,
		policy:   ShadowDuplicates,
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.hasher == nil {
		return nil, newTableError("create", "", ErrNilHasher)
	}
	if t.policy < ShadowDuplicates || t.policy > ReplaceDuplicates {
		return nil, newTableError("create", "", ErrInvalidPolicy)
	}
	if t.log == nil {
		t.log = discardLogger()
	}

	t.buckets = make([][]entry, capacity)
	t.log.WithFields(logrus.Fields{
		"capacity": capacity,
		"policy":   t.policy.String(),
	}).Debug("table created")
	return t, nil
}

// Capacity returns the number of buckets.
func (t *Table) Capacity() uint32 {
	return t.capacity
}

// Len returns the number of entries, counting shadowed duplicates.
func (t *Table) Len() int {
	return t.size
}

func (t *Table) index(key string) uint32 {
	return t.hasher(key) % t.capacity
}

// lookup returns the bucket of key and the slice position of the first match
// in chain order, or -1.
func (t *Table) lookup(key string) (uint32, int) {
	idx := t.index(key)
	chain := t.buckets[idx]
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].key == key {
			return idx, i
		}
	}
	return idx, -1
}

// Insert adds key with value at the head of its bucket's chain. What happens
// when key is already present depends on the table's DuplicatePolicy.
func (t *Table) Insert(key string, value int64) error {
	if t.destroyed {
		return newTableError("insert", key, ErrDestroyed)
	}

	idx, pos := t.lookupForInsert(key)
	if pos >= 0 {
		switch t.policy {
		case RejectDuplicates:
			return newTableError("insert", key, ErrDuplicateKey)
		case ReplaceDuplicates:
			t.buckets[idx][pos].value = value
			return nil
		}
	}

	t.buckets[idx] = append(t.buckets[idx], entry{key: strings.Clone(key), value: value})
	t.size++
	return nil
}

// lookupForInsert skips the chain walk under ShadowDuplicates, which never
// inspects existing entries.
func (t *Table) lookupForInsert(key string) (uint32, int) {
	if t.policy == ShadowDuplicates {
		return t.index(key), -1
	}
	return t.lookup(key)
}

// Exists reports whether any entry has key.
func (t *Table) Exists(key string) bool {
	if t.destroyed {
		return false
	}
	_, pos := t.lookup(key)
	return pos >= 0
}

// Get returns the value of the most recently inserted entry with key.
func (t *Table) Get(key string) (int64, error) {
	if t.destroyed {
		return 0, newTableError("get", key, ErrDestroyed)
	}
	idx, pos := t.lookup(key)
	if pos < 0 {
		return 0, newTableError("get", key, ErrKeyNotFound)
	}
	return t.buckets[idx][pos].value, nil
}

// Update overwrites the value of the entry Get would return.
func (t *Table) Update(key string, value int64) error {
	if t.destroyed {
		return newTableError("update", key, ErrDestroyed)
	}
	idx, pos := t.lookup(key)
	if pos < 0 {
		return newTableError("update", key, ErrKeyNotFound)
	}
	t.buckets[idx][pos].value = value
	return nil
}

// Remove unlinks the first entry with key from its chain. The order of the
// remaining entries is unchanged; a shadowed duplicate becomes visible again.
func (t *Table) Remove(key string) error {
	if t.destroyed {
		return newTableError("remove", key, ErrDestroyed)
	}
	idx, pos := t.lookup(key)
	if pos < 0 {
		return newTableError("remove", key, ErrKeyNotFound)
	}

	chain := t.buckets[idx]
	last := len(chain) - 1
	copy(chain[pos:], chain[pos+1:])
	chain[last] = entry{}
	chain = chain[:last]
	if len(chain) == 0 {
		chain = nil
		t.log.WithFields(logrus.Fields{
			"bucket": idx,
			"key":    key,
		}).Debug("bucket emptied")
	}
	t.buckets[idx] = chain
	t.size--
	return nil
}

// Destroy releases every entry and the bucket array. Any later call that
// reads or writes entries reports ErrDestroyed.
func (t *Table) Destroy() error {
	if t.destroyed {
		return newTableError("destroy", "", ErrDestroyed)
	}
	released := t.size
	for i := range t.buckets {
		t.buckets[i] = nil
	}
	t.buckets = nil
	t.size = 0
	t.destroyed = true

	t.log.WithFields(logrus.Fields{
		"capacity": t.capacity,
		"released": released,
	}).Debug("table destroyed")
	return nil
}
