package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"unify/internal/strlit"
)

// Current schema version - increment when cachePayload format changes.
const cacheSchemaVersion uint16 = 1

// cacheMaxEntries bounds cache growth; beyond it the cache starts over.
const cacheMaxEntries = 1 << 16

// cachePayload is the on-disk shape. Keys are content+rules digests, values
// the unix time the entry was last confirmed.
type cachePayload struct {
	Schema  uint16
	Entries map[string]int64
}

// Cache remembers files already proven clean under a given rule set, so
// repeated runs over a large tree skip re-lexing unchanged files. Any
// mismatch or corruption falls back to formatting; the cache can only skip
// work, never change a result. Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	path    string
	entries map[string]int64
	dirty   bool
}

// DefaultCachePath places the cache under the user cache dir.
func DefaultCachePath() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "unify", "clean.msgpack"), nil
}

// OpenCache loads the cache at path. A missing, unreadable, or
// schema-mismatched file yields an empty cache; that is not an error.
func OpenCache(path string) *Cache {
	c := &Cache{
		path:    path,
		entries: make(map[string]int64),
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	var payload cachePayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return c
	}
	if payload.Schema != cacheSchemaVersion || payload.Entries == nil {
		return c
	}
	c.entries = payload.Entries
	return c
}

// CleanKey builds the cache key for a file's raw content under rules.
func CleanKey(content []byte, rules strlit.Rules) string {
	h := sha256.New()
	h.Write(content)
	fmt.Fprintf(h, "|q=%c|e=%s|f=%s|v=%d",
		rules.PreferredQuote, rules.EscapeSimple, rules.FStringExprQuote, cacheSchemaVersion)
	return hex.EncodeToString(h.Sum(nil))
}

// IsClean reports whether key was previously marked clean.
func (c *Cache) IsClean(key string) bool {
	if c == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// MarkClean records key as clean.
func (c *Cache) MarkClean(key string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= cacheMaxEntries {
		c.entries = make(map[string]int64)
	}
	c.entries[key] = time.Now().Unix()
	c.dirty = true
}

// Save writes the cache back if anything changed.
func (c *Cache) Save() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dirty {
		return nil
	}

	payload := cachePayload{
		Schema:  cacheSchemaVersion,
		Entries: c.entries,
	}
	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, c.path); err != nil {
		os.Remove(tmp)
		return err
	}
	c.dirty = false
	return nil
}
