package cache

import "sync"

// MemoryRequestCacher is the in-process RequestCacher used when no redis
// server is configured.
type MemoryRequestCacher struct {
	MaxNumber int

	mu      sync.Mutex
	entries map[string][]string
}

func CreateMemoryCache(maxNumber int) *MemoryRequestCacher {
	return &MemoryRequestCacher{MaxNumber: maxNumber, entries: make(map[string][]string)}
}

func (cacher *MemoryRequestCacher) Write(key string, value []byte) error {
	cacher.mu.Lock()
	defer cacher.mu.Unlock()

	list := append([]string{string(value)}, cacher.entries[key]...)
	if len(list) > cacher.MaxNumber {
		list = list[:cacher.MaxNumber]
	}
	cacher.entries[key] = list
	return nil
}

func (cacher *MemoryRequestCacher) Read(key string) ([]string, error) {
	cacher.mu.Lock()
	defer cacher.mu.Unlock()

	list := cacher.entries[key]
	out := make([]string, len(list))
	copy(out, list)
	return out, nil
}
