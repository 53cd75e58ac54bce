package services

import (
	"context"
	"io"
	"log"
	"sync"
	"time"
)

// SampleSource names the built-in demonstration dataset.
const SampleSource = "sample"

// AssetService owns the current asset store. Stores are never mutated; reloads swap
// the whole store.
type AssetService struct {
	mu         sync.RWMutex
	loader     *AssetLoader
	configured string
	source     string
	store      *AssetStore
	loadedAt   time.Time
}

// NewAssetService creates a service reading from source. An empty source serves the
// sample dataset until the first successful reload.
func NewAssetService(loader *AssetLoader, source string) *AssetService {
	return &AssetService{
		loader:     loader,
		configured: source,
		source:     SampleSource,
		store:      SampleAssets(),
		loadedAt:   time.Now(),
	}
}

// Current returns the store in use.
func (s *AssetService) Current() *AssetStore {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store
}

// Source describes where the current store came from.
func (s *AssetService) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// LoadedAt returns when the current store was installed.
func (s *AssetService) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Reload reads the configured source again. A failed load installs an empty store and
// returns the error.
func (s *AssetService) Reload(ctx context.Context) (*AssetStore, error) {
	source := s.configured
	if source == "" {
		store := SampleAssets()
		s.replace(store, SampleSource)
		log.Printf("📂 [assets] using sample dataset (%d assets)", store.Len())
		return store, nil
	}

	store, err := s.loader.Load(ctx, source)
	s.replace(store, source)
	return store, err
}

// Upload replaces the store with an uploaded workbook. The store is only swapped when
// parsing succeeds.
func (s *AssetService) Upload(r io.Reader, fileName string) (*AssetStore, error) {
	store, err := s.loader.LoadReader(r, fileName)
	if err != nil {
		return nil, err
	}
	s.replace(store, "upload:"+fileName)
	return store, nil
}

func (s *AssetService) replace(store *AssetStore, source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store = store
	s.source = source
	s.loadedAt = time.Now()
}
