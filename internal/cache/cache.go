// Package cache stores fetched lists and entities keyed by entity type and
// scope. A mutation drops every entry of its type, or only the entries under
// one path when the collection is scoped to a parent.
package cache

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/heartmarshall/coach-admin/internal/domain"
)

// Key identifies one cached value. Scope distinguishes lists by filter and
// items by id, e.g. "list:gyms/4/users?page=1&role=trainer" or "item:gyms/7".
type Key struct {
	Entity domain.EntityType
	Scope  string
}

func (k Key) String() string {
	return string(k.Entity) + "|" + k.Scope
}

// ListKey is the key of one list page of a collection.
func ListKey(entity domain.EntityType, path string, filter domain.EntityFilter) Key {
	return Key{Entity: entity, Scope: "list:" + path + "?" + filter.Key()}
}

// ItemKey is the key of one entity.
func ItemKey(entity domain.EntityType, path string, id int64) Key {
	return Key{Entity: entity, Scope: "item:" + path + "/" + strconv.FormatInt(id, 10)}
}

// PathPrefixes returns the scope prefixes of the lists and items kept under
// path, for use with InvalidatePrefix.
func PathPrefixes(path string) []string {
	return []string{"list:" + path + "?", "item:" + path + "/"}
}

// Entry is a cached value with its fetch time.
type Entry struct {
	Key       Key
	Value     any
	FetchedAt time.Time
}

// Cache is safe for concurrent use.
// Every entity type carries a generation that Invalidate bumps, so a fetch
// that started before a mutation can be refused by SetIf after it.
type Cache struct {
	mu          sync.RWMutex
	entries     map[Key]Entry
	generations map[domain.EntityType]uint64
	now         func() time.Time
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{
		entries:     map[Key]Entry{},
		generations: map[domain.EntityType]uint64{},
		now:         time.Now,
	}
}

// Get returns the entry stored under key.
func (c *Cache) Get(key Key) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	return e, ok
}

// Set stores value under key, replacing any previous entry.
func (c *Cache) Set(key Key, value any) Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := Entry{Key: key, Value: value, FetchedAt: c.now()}
	c.entries[key] = e
	return e
}

// Generation returns the current invalidation generation of entity.
func (c *Cache) Generation(entity domain.EntityType) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generations[entity]
}

// SetIf stores value only if key's entity has not been invalidated since gen
// was read.
func (c *Cache) SetIf(key Key, value any, gen uint64) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[key.Entity] != gen {
		return Entry{}, false
	}
	e := Entry{Key: key, Value: value, FetchedAt: c.now()}
	c.entries[key] = e
	return e, true
}

// Delete removes one entry.
func (c *Cache) Delete(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Invalidate removes every entry of the given entity types and returns the
// number of entries dropped.
func (c *Cache) Invalidate(entities ...domain.EntityType) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range entities {
		c.generations[e]++
	}

	n := 0
	for k := range c.entries {
		for _, e := range entities {
			if k.Entity == e {
				delete(c.entries, k)
				n++
				break
			}
		}
	}
	return n
}

// InvalidatePrefix removes entries of entity whose scope starts with one of
// prefixes and returns the number dropped. The generation of entity is
// bumped as well, so an older fetch is not stored under the dropped scopes.
func (c *Cache) InvalidatePrefix(entity domain.EntityType, prefixes ...string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generations[entity]++

	n := 0
	for k := range c.entries {
		if k.Entity != entity {
			continue
		}
		for _, p := range prefixes {
			if strings.HasPrefix(k.Scope, p) {
				delete(c.entries, k)
				n++
				break
			}
		}
	}
	return n
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
