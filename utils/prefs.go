package utils

import (
	"encoding/json"
	"os"
	"sync"
)

// PrefStore is a small durable key-value store backed by a JSON file: flat
// string keys, scalar values, rewritten whole on every change. It holds the
// device-local session flags that must survive a process restart.
type PrefStore struct {
	mu     sync.Mutex
	path   string
	values map[string]any
}

// NewPrefStore loads (or lazily creates) the store at path. A missing or
// unreadable file starts the store empty rather than failing: losing prefs
// only logs the user out.
func NewPrefStore(path string) *PrefStore {
	store := &PrefStore{path: path, values: make(map[string]any)}
	data, err := os.ReadFile(path)
	if err == nil {
		_ = json.Unmarshal(data, &store.values)
	}
	return store
}

func (p *PrefStore) GetString(key string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if v, ok := p.values[key].(string); ok {
		return v, true
	}
	return "", false
}

func (p *PrefStore) GetBool(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, _ := p.values[key].(bool)
	return v
}

func (p *PrefStore) Set(key string, value any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[key] = value
	return p.flushLocked()
}

func (p *PrefStore) Remove(keys ...string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, key := range keys {
		delete(p.values, key)
	}
	return p.flushLocked()
}

func (p *PrefStore) flushLocked() error {
	data, err := json.Marshal(p.values)
	if err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o600)
}
