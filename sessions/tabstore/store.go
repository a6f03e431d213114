package tabstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jrsteele09/codelearn-landing/internal/errors"
	"github.com/jrsteele09/codelearn-landing/sessions"
	"github.com/rs/zerolog/log"
)

// DefaultQuotaBytes matches the per-origin session storage quota of common browsers.
const DefaultQuotaBytes = 5 * 1024 * 1024

// Store is an in-memory key/value store keyed by tab id. Each id owns an
// independent area. The server issues one id per browser session, so tabs of
// the same browser share an area.
//
// The server never learns that a browser was closed, so areas that have not
// been touched for a while are dropped by DeleteIdle (see Run).
type Store struct {
	mu         sync.RWMutex
	quotaBytes int
	nowTime    func() time.Time
	tabs       map[string]*area // tabID -> area
}

type area struct {
	values   map[string]string
	lastSeen time.Time
}

// Option defines a function type to modify the Store instance.
type Option func(*Store)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) Option {
	return func(s *Store) {
		s.nowTime = nowFunc
	}
}

// New creates a store that limits every tab to quotaBytes of keys and values.
// A non-positive quota selects DefaultQuotaBytes.
func New(quotaBytes int, options ...Option) *Store {
	if quotaBytes <= 0 {
		quotaBytes = DefaultQuotaBytes
	}
	s := &Store{
		quotaBytes: quotaBytes,
		nowTime:    time.Now,
		tabs:       make(map[string]*area),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Tab returns the storage view of a single tab.
func (s *Store) Tab(tabID string) sessions.Storage {
	return &tabStorage{store: s, tabID: tabID}
}

// Close drops everything the tab stored.
func (s *Store) Close(tabID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tabs, tabID)
}

// Len returns the number of keys held by a tab.
func (s *Store) Len(tabID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.tabs[tabID]; ok {
		return len(a.values)
	}
	return 0
}

// Tabs returns the number of tabs currently holding data.
func (s *Store) Tabs() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tabs)
}

// DeleteIdle removes every tab last used before idleSince and returns how
// many were removed.
func (s *Store) DeleteIdle(idleSince time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for tabID, a := range s.tabs {
		if a.lastSeen.Before(idleSince) {
			delete(s.tabs, tabID)
			removed++
		}
	}
	return removed
}

// Run drops tabs idle for longer than idleTimeout every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval, idleTimeout time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.DeleteIdle(s.nowTime().Add(-idleTimeout)); removed > 0 {
				log.Debug().Int("removed", removed).Int("remaining", s.Tabs()).Msg("Dropped idle tabs")
			}
		}
	}
}

func (s *Store) get(tabID, key string) (string, bool, error) {
	if tabID == "" {
		return "", false, fmt.Errorf("tabID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.tabs[tabID]
	if !ok {
		return "", false, nil
	}
	a.lastSeen = s.nowTime()
	value, ok := a.values[key]
	return value, ok, nil
}

func (s *Store) set(tabID, key, value string) error {
	if tabID == "" {
		return fmt.Errorf("tabID is required")
	}
	if key == "" {
		return fmt.Errorf("key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.tabs[tabID]
	if !ok {
		a = &area{values: make(map[string]string)}
	}

	used := usage(a.values) + len(key) + len(value)
	if old, exists := a.values[key]; exists {
		used -= len(key) + len(old)
	}
	if used > s.quotaBytes {
		return errors.Wrapf(errors.ErrQuotaExceeded, "tab %s: %d of %d bytes", tabID, used, s.quotaBytes)
	}

	a.values[key] = value
	a.lastSeen = s.nowTime()
	s.tabs[tabID] = a
	return nil
}

func (s *Store) delete(tabID, key string) error {
	if tabID == "" {
		return fmt.Errorf("tabID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.tabs[tabID]
	if !ok {
		return nil // Already doesn't exist, no error
	}

	delete(a.values, key)
	a.lastSeen = s.nowTime()

	// Clean up empty tab area
	if len(a.values) == 0 {
		delete(s.tabs, tabID)
	}
	return nil
}

func usage(values map[string]string) int {
	n := 0
	for k, v := range values {
		n += len(k) + len(v)
	}
	return n
}

type tabStorage struct {
	store *Store
	tabID string
}

var _ sessions.Storage = (*tabStorage)(nil)

func (t *tabStorage) Get(key string) (string, bool, error) {
	return t.store.get(t.tabID, key)
}

func (t *tabStorage) Set(key, value string) error {
	return t.store.set(t.tabID, key, value)
}

func (t *tabStorage) Delete(key string) error {
	return t.store.delete(t.tabID, key)
}
