package main

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/theflywheel/chash"
)

func main() {
	log.SetLevel(log.DebugLevel)

	t, err := chash.New(8, chash.WithLogger(log.StandardLogger()))
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}
	defer t.Destroy()

	// Insert some data
	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("key-%d", i)
		if err := t.Insert(key, int64(i*100)); err != nil {
			log.Fatalf("Failed to insert %s: %v", key, err)
		}
	}
	log.Infof("Inserted %d key-value pairs", t.Len())

	// Retrieve and display some values
	for i := 0; i < 15; i += 2 {
		key := fmt.Sprintf("key-%d", i)
		value, err := t.Get(key)
		switch {
		case errors.Is(err, chash.ErrKeyNotFound):
			log.Infof("%s not found", key)
		case err != nil:
			log.Fatalf("Failed to get %s: %v", key, err)
		default:
			log.Infof("%s => %d", key, value)
		}
	}

	// Update a value
	if err := t.Update("key-2", 999); err != nil {
		log.Fatalf("Failed to update key-2: %v", err)
	}
	value, _ := t.Get("key-2")
	log.Infof("Updated key-2 => %d", value)

	// Shadow it, then remove the shadowing entry
	if err := t.Insert("key-2", 1); err != nil {
		log.Fatalf("Failed to insert key-2: %v", err)
	}
	if err := t.Remove("key-2"); err != nil {
		log.Fatalf("Failed to remove key-2: %v", err)
	}
	value, _ = t.Get("key-2")
	log.Infof("key-2 after removing its shadow => %d", value)

	if err := t.Print(os.Stdout); err != nil {
		log.Fatalf("Failed to print table: %v", err)
	}

	s := t.Stats()
	log.WithFields(log.Fields{
		"entries":       s.Entries,
		"used_buckets":  s.UsedBuckets,
		"longest_chain": s.LongestChain,
		"load_factor":   s.LoadFactor,
	}).Info("Example completed successfully")
}
