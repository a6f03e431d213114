package storagefake

import (
	"errors"
	"sync"

	"github.com/jrsteele09/codelearn-landing/sessions"
)

var _ sessions.Storage = (*FakeStorage)(nil)

// ErrInjected is returned by operations set to fail.
var ErrInjected = errors.New("injected storage failure")

// FakeStorage is an in-memory Storage whose operations can be made to fail.
type FakeStorage struct {
	lock  sync.RWMutex
	items map[string]string

	FailGet    bool
	FailSet    bool
	FailDelete bool
}

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{
		items: make(map[string]string),
	}
}

func (fs *FakeStorage) Get(key string) (string, bool, error) {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	if fs.FailGet {
		return "", false, ErrInjected
	}
	v, ok := fs.items[key]
	return v, ok, nil
}

func (fs *FakeStorage) Set(key, value string) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	if fs.FailSet {
		return ErrInjected
	}
	fs.items[key] = value
	return nil
}

func (fs *FakeStorage) Delete(key string) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	if fs.FailDelete {
		return ErrInjected
	}
	delete(fs.items, key)
	return nil
}

// Put stores a raw value, bypassing failure injection.
func (fs *FakeStorage) Put(key, value string) {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.items[key] = value
}

// Len returns the number of stored keys.
func (fs *FakeStorage) Len() int {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	return len(fs.items)
}
