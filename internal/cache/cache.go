// Package cache stores finished analysis reports so re-analyzing an
// unchanged document is free. A memory layer fronts an optional disk
// layer.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/clausewise/clausewise/internal/model"
)

// Cache is a byte-level cache layer.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives the cache key for a document. The same text analyzed
// under a different language setting is a different entry.
func Key(text, lang string) string {
	hash := sha256.Sum256([]byte(lang + "\x00" + text))
	return "clausewise:v1:" + hex.EncodeToString(hash[:])
}

// Layered checks memory first, then disk, promoting disk hits into
// memory.
type Layered struct {
	memory Cache
	disk   Cache
}

// New builds the cache configured by cfg: memory-only when no disk
// directory is set, nil when caching is disabled.
func New(cfg model.CacheConfig) Cache {
	if !cfg.Enabled {
		return nil
	}
	memory := NewMemory(cfg.TTL, 10*time.Minute)
	if cfg.Dir == "" {
		return memory
	}
	return &Layered{memory: memory, disk: NewDisk(cfg.Dir, cfg.TTL)}
}

// Get retrieves a value, checking memory before disk.
func (c *Layered) Get(key string) ([]byte, bool) {
	if val, found := c.memory.Get(key); found {
		return val, true
	}
	if val, found := c.disk.Get(key); found {
		_ = c.memory.Set(key, val, 0) // promote with default TTL
		return val, true
	}
	return nil, false
}

// Set stores a value in both layers.
func (c *Layered) Set(key string, value []byte, ttl time.Duration) error {
	if err := c.memory.Set(key, value, ttl); err != nil {
		return err
	}
	return c.disk.Set(key, value, ttl)
}

// Delete removes a value from both layers.
func (c *Layered) Delete(key string) error {
	_ = c.memory.Delete(key)
	return c.disk.Delete(key)
}

// Clear empties both layers.
func (c *Layered) Clear() error {
	_ = c.memory.Clear()
	return c.disk.Clear()
}
