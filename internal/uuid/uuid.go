// Package uuid generates handles for elements and style conditions
package uuid

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator is an interface for generating handles
type Generator interface {
	New() string
}

// GoogleUUIDGenerator produces time-ordered UUIDs, optionally prefixed so
// handles read as "cond-..." or "el-..." in layouts and logs.
type GoogleUUIDGenerator struct {
	prefix string
}

// New generates a new handle
func (g *GoogleUUIDGenerator) New() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	if g.prefix == "" {
		return id.String()
	}
	return g.prefix + "-" + id.String()
}

// NewGoogleUUIDGenerator creates a generator of bare UUIDs
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// NewPrefixedGenerator creates a generator whose handles start with prefix
func NewPrefixedGenerator(prefix string) *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{prefix: prefix}
}

// Sequential hands out prefix-1, prefix-2, ... and is meant for tests and
// golden files.
type Sequential struct {
	prefix string
	next   atomic.Int64
}

// NewSequential creates a sequential generator
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

func (s *Sequential) New() string {
	return s.prefix + "-" + strconv.FormatInt(s.next.Add(1), 10)
}
