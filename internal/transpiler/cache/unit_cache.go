// Package cache provides a small bounded cache of parsed compilation units.
// It is a pure memoization to avoid re-parsing a unit already seen in the
// same process lifetime; it never affects output correctness. The cache is
// an explicit object owned by whoever invokes the pipeline, not ambient
// state, so tests can supply a fresh or pre-seeded cache.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/mahalo/mahalo-transpiler/internal/transpiler/ast"
)

// DefaultCapacity is the bound used when none is given.
const DefaultCapacity = 8

// CachedUnit is a parsed unit with its cache bookkeeping.
type CachedUnit struct {
	Unit     *ast.Unit
	Hash     string
	Path     string
	CachedAt time.Time
}

// UnitCache is a capacity-bounded cache of parsed units keyed by path.
// Once over capacity the oldest entry is evicted first.
type UnitCache struct {
	capacity int
	entries  map[string]*CachedUnit
	order    []string // insertion order, oldest first
	mu       sync.Mutex
}

// NewUnitCache creates a cache bounded to the given capacity. A
// non-positive capacity falls back to DefaultCapacity.
func NewUnitCache(capacity int) *UnitCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &UnitCache{
		capacity: capacity,
		entries:  make(map[string]*CachedUnit),
	}
}

// HashContent computes the SHA-256 content hash used to detect stale
// entries.
func HashContent(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// Get retrieves a cached unit whose content hash still matches. A stale
// entry (same path, different hash) is a miss.
func (c *UnitCache) Get(path, hash string) (*ast.Unit, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[path]
	if !ok || entry.Hash != hash {
		return nil, false
	}
	return entry.Unit, true
}

// Set stores a parsed unit, evicting the oldest entry when over capacity.
func (c *UnitCache) Set(path string, unit *ast.Unit, hash string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[path]; ok {
		c.removeFromOrder(path)
	}
	c.entries[path] = &CachedUnit{
		Unit:     unit,
		Hash:     hash,
		Path:     path,
		CachedAt: time.Now(),
	}
	c.order = append(c.order, path)

	for len(c.order) > c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}

// Invalidate removes an entry.
func (c *UnitCache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[path]; !ok {
		return
	}
	delete(c.entries, path)
	c.removeFromOrder(path)
}

// Len reports the number of cached units.
func (c *UnitCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *UnitCache) removeFromOrder(path string) {
	for i, p := range c.order {
		if p == path {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
