// Package syncer decides, per screen activation, whether a remote
// fetch is needed and reconciles the result into the client store.
//
// The contract for each collection: if its loaded flag is set, do
// nothing; otherwise fetch, replace the collection, then mark it
// loaded. On failure the store is left untouched and the flag stays
// clear so the next activation retries. Two callers may race to fetch
// the same collection; the later replace wins, which is harmless
// because both carry authoritative remote data.
package syncer

import (
	"context"
	"fmt"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/pkg/bus"
	"github.com/rustyeddy/tradejournal/store"
)

type Syncer struct {
	cache *store.Store
	ds    journal.Datastore
	bus   *bus.Bus
}

func New(cache *store.Store, ds journal.Datastore, b *bus.Bus) *Syncer {
	return &Syncer{cache: cache, ds: ds, bus: b}
}

// SyncAccounts populates the accounts collection for userID unless it
// is already loaded.
func (s *Syncer) SyncAccounts(ctx context.Context, userID string) error {
	if s.cache.Loaded(store.Accounts) {
		return nil
	}

	accounts, err := s.ds.ListAccounts(ctx, userID)
	if err != nil {
		return fmt.Errorf("fetch accounts: %w", err)
	}

	s.cache.ReplaceAccounts(accounts)
	s.cache.MarkLoaded(store.Accounts)

	// Adopt an active account if none survived the restore.
	if s.cache.ActiveAccountID() == "" && len(accounts) > 0 {
		s.cache.SetActiveAccount(accounts[0].ID)
	}
	return nil
}

// SyncTrades populates the trades collection with every trade across
// the user's accounts unless it is already loaded.
func (s *Syncer) SyncTrades(ctx context.Context, userID string) error {
	if s.cache.Loaded(store.Trades) {
		return nil
	}

	trades, err := s.ds.ListTradesForUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("fetch trades: %w", err)
	}

	s.cache.ReplaceTrades(trades)
	s.cache.MarkLoaded(store.Trades)
	return nil
}

// SyncAccountTrades populates the trades collection scoped to one
// account. It shares the trades loaded flag with SyncTrades: the flag
// guards the collection, not the scope, so invalidation stays coarse.
func (s *Syncer) SyncAccountTrades(ctx context.Context, accountID string) error {
	if s.cache.Loaded(store.Trades) {
		return nil
	}

	trades, err := s.ds.ListTrades(ctx, accountID)
	if err != nil {
		return fmt.Errorf("fetch trades: %w", err)
	}

	s.cache.ReplaceTrades(trades)
	s.cache.MarkLoaded(store.Trades)
	return nil
}

// WatchInvalidations subscribes to change topics and clears the
// matching loaded flag on receipt, so the next Sync call refetches.
// The returned func cancels both subscriptions.
func (s *Syncer) WatchInvalidations() (cancel func()) {
	offA := s.bus.Subscribe(bus.AccountsChanged, func() {
		s.cache.ResetLoaded(store.Accounts)
	})
	offT := s.bus.Subscribe(bus.TradesChanged, func() {
		s.cache.ResetLoaded(store.Trades)
	})
	return func() {
		offA()
		offT()
	}
}
