/*
Package chash provides a chained hash table mapping string keys to int64 values.

The number of buckets is fixed when the table is created and never changes.
Each key is hashed to a bucket and entries sharing a bucket form a chain,
newest first.

Basic usage:

	import "github.com/theflywheel/chash"

	t, err := chash.New(16)
	if err != nil {
		log.Fatal(err)
	}
	defer t.Destroy()

	if err := t.Insert("apples", 3); err != nil {
		log.Fatal(err)
	}

	n, err := t.Get("apples")
	if errors.Is(err, chash.ErrKeyNotFound) {
		fmt.Println("no apples")
	}

Features:

  - Fixed bucket count, no rehashing
  - Polynomial (multiplier 31) string hash by default; FNV-1a, xxHash and
    the runtime map hash are available through WithHasher
  - Get, Update and Remove report ErrKeyNotFound instead of assuming the key
    is present
  - Explicit policy for duplicate keys (shadow, reject or replace)
  - Not safe for concurrent use; callers must serialize every call,
    including Exists and Get

Duplicate keys:

By default Insert does not look for an existing entry. Inserting a key twice
adds a second entry that shadows the first: Get and Update see the newest one,
and Remove unlinks it so the older value becomes visible again. Use
WithDuplicatePolicy(RejectDuplicates) or WithDuplicatePolicy(ReplaceDuplicates)
to change this, or call Exists before Insert.
*/
package chash
