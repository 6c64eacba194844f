package chash

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DuplicatePolicy decides what Insert does with a key that is already present.
type DuplicatePolicy int

const (
	// ShadowDuplicates adds a new entry in front of the existing one. Lookups
	// see the newest entry until it is removed, after which the older one
	// becomes visible again.
	ShadowDuplicates DuplicatePolicy = iota
	// RejectDuplicates makes Insert fail with ErrDuplicateKey.
	RejectDuplicates
	// ReplaceDuplicates overwrites the value of the existing entry in place.
	ReplaceDuplicates
)

func (p DuplicatePolicy) String() string {
	switch p {
	case ShadowDuplicates:
		return "shadow"
	case RejectDuplicates:
		return "reject"
	case ReplaceDuplicates:
		return "replace"
	default:
		return "unknown"
	}
}

// Option configures a Table at creation.
type Option func(*Table)

// WithHasher sets the function used to pick buckets. Defaults to Poly31.
func WithHasher(h HashFunc) Option {
	return func(t *Table) {
		t.hasher = h
	}
}

// WithDuplicatePolicy sets how Insert treats keys that are already present.
// Defaults to ShadowDuplicates.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(t *Table) {
		t.policy = p
	}
}

// WithLogger sets the logger for lifecycle events. By default nothing is
// logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(t *Table) {
		t.log = l
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
