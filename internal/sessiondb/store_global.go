package sessiondb

import (
	"sync"

	"github.com/fweigt/tslabel/internal/contract"
	"github.com/fweigt/tslabel/schema"
)

var (
	storeMu sync.RWMutex
	store   contract.SessionStore
)

// InitStore initializes the global session store with the validated config.
func InitStore(backend schema.DatabaseBackend, connStr string) error {
	s, err := NewSessionStore(backend, connStr)
	if err != nil {
		return err
	}
	storeMu.Lock()
	defer storeMu.Unlock()
	store = s
	return nil
}

// GetStore returns the global session store, or nil before InitStore.
func GetStore() contract.SessionStore {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return store
}

// CloseStore closes the global session store if one was initialized.
func CloseStore() {
	storeMu.Lock()
	defer storeMu.Unlock()
	if store != nil {
		_ = store.Close()
		store = nil
	}
}
