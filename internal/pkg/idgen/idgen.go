// Package idgen mints entry ids of the form "<prefix>_<suffix>"
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Id prefixes for inventory entries
const (
	ItemPrefix     = "item"
	ArtifactPrefix = "art"
)

// Generator mints unique identifiers
type Generator interface {
	Generate() string
}

// Prefixed joins a fixed prefix to a suffix source. An empty prefix yields bare suffixes.
type Prefixed struct {
	prefix string
	next   func() string
}

// Generate returns the next id
func (g *Prefixed) Generate() string {
	if g.prefix == "" {
		return g.next()
	}
	return g.prefix + "_" + g.next()
}

// NewUUID returns a generator with random UUID suffixes
func NewUUID(prefix string) *Prefixed {
	return &Prefixed{prefix: prefix, next: uuid.NewString}
}

// NewSequential returns a generator counting up from 1. Safe for concurrent use.
func NewSequential(prefix string) *Prefixed {
	var counter atomic.Uint64
	return &Prefixed{
		prefix: prefix,
		next: func() string {
			return strconv.FormatUint(counter.Add(1), 10)
		},
	}
}
