package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/tradejournal/journal"
)

// Snapshot is the durable image of the store: the entity collections
// and the active-account pointer. The loaded flags are deliberately
// absent so every process start begins with a fresh fetch.
type Snapshot struct {
	Accounts        []journal.Account `yaml:"accounts" json:"accounts"`
	Trades          []journal.Trade   `yaml:"trades" json:"trades"`
	ActiveAccountID string            `yaml:"active_account_id,omitempty" json:"active_account_id,omitempty"`
}

// Snapshotter persists and restores store snapshots.
type Snapshotter interface {
	Save(Snapshot) error
	Load() (snap Snapshot, ok bool, err error)
}

// Snapshot captures the store's current persistable state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Accounts:        append([]journal.Account(nil), s.accounts...),
		Trades:          append([]journal.Trade(nil), s.trades...),
		ActiveAccountID: s.activeID,
	}
}

// Restore rehydrates the store from a snapshot. Loaded flags stay
// clear: snapshot data is a stale convenience view, not an excuse to
// skip the initial fetch.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append([]journal.Account(nil), snap.Accounts...)
	s.trades = append([]journal.Trade(nil), snap.Trades...)
	s.activeID = snap.ActiveAccountID
	s.loaded = make(map[Collection]bool)
}

// FileSnapshotter stores the snapshot as a YAML file.
type FileSnapshotter struct {
	Path string
}

func (f FileSnapshotter) Save(snap Snapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(f.Path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (f FileSnapshotter) Load() (Snapshot, bool, error) {
	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("read snapshot: %w", err)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, false, fmt.Errorf("parse snapshot: %w", err)
	}
	return snap, true, nil
}
