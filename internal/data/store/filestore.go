package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/fsnotify/fsnotify"

	"github.com/webtimed/webtimed/internal/util"
)

// FileStore keeps one JSON file per named key under a base directory, with a
// memory cache in front. A directory watcher picks up writes from external
// processes (dashboards editing limits or categories) so the cache never goes
// stale and subscribers hear about every change regardless of who wrote it.
type FileStore struct {
	baseDir string

	mu     sync.RWMutex
	memory map[string][]byte

	subMu   sync.Mutex
	subs    []chan string
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewFileStore opens (creating if needed) a store rooted at baseDir.
func NewFileStore(baseDir string) (*FileStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create store watcher: %w", err)
	}
	if err := watcher.Add(baseDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch store directory: %w", err)
	}

	s := &FileStore{
		baseDir: baseDir,
		memory:  make(map[string][]byte),
		watcher: watcher,
		done:    make(chan struct{}),
	}
	go s.processEvents()

	return s, nil
}

// Seed initializes any missing keys to empty JSON objects, mirroring a first
// install.
func (s *FileStore) Seed() error {
	for _, key := range AllKeys {
		if _, err := os.Stat(s.keyPath(key)); err == nil {
			continue
		}
		if err := s.Set(key, map[string]interface{}{}); err != nil {
			return err
		}
	}
	return nil
}

func (s *FileStore) keyPath(key string) string {
	return filepath.Join(s.baseDir, key+".json")
}

// Get reads the value stored under key into out. A missing key leaves out
// untouched and returns nil.
func (s *FileStore) Get(key string, out interface{}) error {
	s.mu.RLock()
	data, ok := s.memory[key]
	s.mu.RUnlock()
	if ok {
		return sonic.Unmarshal(data, out)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another reader may have filled the cache meanwhile.
	if data, ok := s.memory[key]; ok {
		return sonic.Unmarshal(data, out)
	}

	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read store key %s: %w", key, err)
	}

	if err := sonic.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode store key %s: %w", key, err)
	}
	s.memory[key] = data
	return nil
}

// Set persists the whole value under key and notifies subscribers. The file
// write goes through a temp file and rename so readers never observe a
// partial value.
func (s *FileStore) Set(key string, value interface{}) error {
	data, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode store key %s: %w", key, err)
	}

	s.mu.Lock()
	tmpPath := s.keyPath(key) + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to write store key %s: %w", key, err)
	}
	if err := os.Rename(tmpPath, s.keyPath(key)); err != nil {
		s.mu.Unlock()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to commit store key %s: %w", key, err)
	}
	s.memory[key] = data
	s.mu.Unlock()

	s.notify(key)
	return nil
}

// Reset removes every named key, the full user-initiated wipe.
func (s *FileStore) Reset() error {
	for _, key := range AllKeys {
		s.mu.Lock()
		delete(s.memory, key)
		err := os.Remove(s.keyPath(key))
		s.mu.Unlock()
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove store key %s: %w", key, err)
		}
		s.notify(key)
	}
	return nil
}

// Subscribe returns a channel that receives the name of each key whose value
// changed. Slow subscribers drop notifications rather than block writers.
func (s *FileStore) Subscribe() <-chan string {
	ch := make(chan string, 16)
	s.subMu.Lock()
	s.subs = append(s.subs, ch)
	s.subMu.Unlock()
	return ch
}

func (s *FileStore) notify(key string) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- key:
		default:
		}
	}
}

// processEvents folds external file modifications back into the cache. A
// write whose bytes match the cached value is one of our own and is ignored.
func (s *FileStore) processEvents() {
	for {
		select {
		case <-s.done:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			key := keyFromPath(event.Name)
			if key == "" {
				continue
			}
			s.reloadKey(key)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("Store watcher error: " + err.Error())
		}
	}
}

func (s *FileStore) reloadKey(key string) {
	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		return
	}

	s.mu.Lock()
	cached, ok := s.memory[key]
	if ok && bytes.Equal(cached, data) {
		s.mu.Unlock()
		return
	}
	s.memory[key] = data
	s.mu.Unlock()

	s.notify(key)
}

func keyFromPath(path string) string {
	name := filepath.Base(path)
	if !strings.HasSuffix(name, ".json") {
		return ""
	}
	key := strings.TrimSuffix(name, ".json")
	for _, known := range AllKeys {
		if key == known {
			return key
		}
	}
	return ""
}

// Close stops the watcher and closes all subscriber channels.
func (s *FileStore) Close() error {
	close(s.done)
	err := s.watcher.Close()

	s.subMu.Lock()
	for _, ch := range s.subs {
		close(ch)
	}
	s.subs = nil
	s.subMu.Unlock()

	return err
}
