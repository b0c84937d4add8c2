package driver

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// payloadSchema is bumped whenever the Payload format changes, so stale
// cache entries invalidate themselves.
const payloadSchema uint16 = 1

// Payload is the per-file record kept in the disk cache: the content hash
// plus whether the last run over that exact content was clean. A clean hit
// lets a directory run skip the file entirely.
type Payload struct {
	Schema    uint16
	Path      string
	Hash      [32]byte
	Clean     bool
	DiagCount int
}

// DiskCache stores payloads keyed by content hash under the user cache
// directory. Safe for concurrent use. A nil *DiskCache is a working no-op.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes a disk cache at the standard location
// ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Get loads the payload for a content hash. Misses, unreadable entries, and
// schema mismatches all come back as ok == false.
func (c *DiskCache) Get(hash [32]byte) (*Payload, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.entryPath(hash))
	if err != nil {
		return nil, false
	}
	var p Payload
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return nil, false
	}
	if p.Schema != payloadSchema || p.Hash != hash {
		return nil, false
	}
	return &p, true
}

// Put stores a payload, overwriting any entry for the same hash.
// Write failures are swallowed: the cache is an optimization only.
func (c *DiskCache) Put(p *Payload) {
	if c == nil || p == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := msgpack.Marshal(p)
	if err != nil {
		return
	}
	_ = os.WriteFile(c.entryPath(p.Hash), data, 0o644)
}

func (c *DiskCache) entryPath(hash [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".bin")
}
