package pack

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	gocache "github.com/patrickmn/go-cache"

	"github.com/zjrosen/warble/internal/log"
)

// ManifestFile is the manifest filename within each pack directory.
const ManifestFile = "pack.json"

const (
	cacheTTL     = 5 * time.Minute
	cacheCleanup = 10 * time.Minute
)

// Store loads pack manifests from a packs directory. Layout:
//
//	<dir>/<pack-id>/pack.json
//	<dir>/<pack-id>/<asset files>
//
// Parsed manifests are cached by pack id. Watch invalidates cache
// entries when a manifest changes on disk, so edits to a pack take
// effect without a restart.
type Store struct {
	dir     string
	cache   *gocache.Cache
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewStore creates a Store rooted at dir. The directory does not need
// to exist; missing packs simply load as absent.
func NewStore(dir string) *Store {
	return &Store{
		dir:   dir,
		cache: gocache.New(cacheTTL, cacheCleanup),
	}
}

// Dir returns the packs directory the store reads from.
func (s *Store) Dir() string {
	return s.dir
}

// Load returns the manifest for the given pack id, or false if the
// pack directory, manifest file, or manifest JSON is unusable.
// Absence is an expected condition, not an error: callers degrade to
// "nothing to play".
func (s *Store) Load(packID string) (*Manifest, bool) {
	if packID == "" {
		return nil, false
	}
	if cached, found := s.cache.Get(packID); found {
		return cached.(*Manifest), true
	}

	data, err := os.ReadFile(filepath.Join(s.dir, packID, ManifestFile))
	if err != nil {
		log.Debug(log.CatPack, "manifest unavailable", "pack", packID, "error", err)
		return nil, false
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		log.Debug(log.CatPack, "manifest unparseable", "pack", packID, "error", err)
		return nil, false
	}

	s.cache.Set(packID, &m, gocache.DefaultExpiration)
	return &m, true
}

// AssetPath returns the filesystem path for an asset within a pack.
func (s *Store) AssetPath(packID, file string) string {
	return filepath.Join(s.dir, packID, file)
}

// Packs lists the ids of installed packs: subdirectories of the packs
// dir containing a readable manifest. Sorted for stable output.
func (s *Store) Packs() []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil
	}

	var ids []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(s.dir, entry.Name(), ManifestFile)); err != nil {
			continue
		}
		ids = append(ids, entry.Name())
	}
	sort.Strings(ids)
	return ids
}

// Watch starts watching the packs directory and invalidates the cache
// entry for any pack whose files change. Safe to skip: without a
// watcher, edits show up after the cache TTL expires instead.
func (s *Store) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(s.dir); err != nil {
		_ = watcher.Close()
		return err
	}
	// Watch existing pack directories so manifest edits are seen.
	for _, id := range s.Packs() {
		if err := watcher.Add(filepath.Join(s.dir, id)); err != nil {
			log.Debug(log.CatPack, "watch pack dir failed", "pack", id, "error", err)
		}
	}

	s.watcher = watcher
	s.done = make(chan struct{})
	go s.watchLoop()
	return nil
}

func (s *Store) watchLoop() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			s.handleEvent(event)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			log.Debug(log.CatPack, "watcher error", "error", err)
		case <-s.done:
			return
		}
	}
}

func (s *Store) handleEvent(event fsnotify.Event) {
	rel, err := filepath.Rel(s.dir, event.Name)
	if err != nil || rel == "." {
		return
	}

	// First path element is the pack id.
	packID := rel
	for dir := filepath.Dir(packID); dir != "."; dir = filepath.Dir(dir) {
		packID = dir
	}
	s.cache.Delete(packID)
	log.Debug(log.CatPack, "cache invalidated", "pack", packID, "op", event.Op.String())

	// A new pack directory needs its own watch for manifest edits.
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := s.watcher.Add(event.Name); err != nil {
				log.Debug(log.CatPack, "watch new pack dir failed", "pack", packID, "error", err)
			}
		}
	}
}

// Close stops the watcher, if one is running.
func (s *Store) Close() {
	if s.watcher != nil {
		close(s.done)
		_ = s.watcher.Close()
		s.watcher = nil
	}
}
