package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/config"
	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/ledger"
	"github.com/rustyeddy/tradejournal/pkg/bus"
	"github.com/rustyeddy/tradejournal/pkg/notify"
	"github.com/rustyeddy/tradejournal/store"
	"github.com/rustyeddy/tradejournal/syncer"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "tradejournal",
	Short: "A personal trading journal",
	Long: `Tradejournal records your trading accounts and trades and reports
aggregated performance statistics.

It provides tools for:
  - Managing up to three trading accounts with deposits and withdrawals
  - Recording trades with a reviewed net P/L before commit
  - Win rate, P&L and trade-count statistics by period and instrument
  - A local snapshot so listings survive restarts`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
}

// app bundles everything a command needs: config, datastore, client
// store, bus, syncer and the mutation service.
type app struct {
	cfg   *config.Config
	ds    *journal.SQLite
	cache *store.Store
	bus   *bus.Bus
	snap  store.FileSnapshotter
	sync  *syncer.Syncer
	svc   *ledger.Service

	unwatch func()
}

func openApp() (*app, error) {
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFromFile(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	ds, err := journal.NewSQLite(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	cache := store.New()
	snap := store.FileSnapshotter{Path: cfg.SnapshotPath}
	if s, ok, err := snap.Load(); err != nil {
		log.Printf("snapshot ignored: %v", err)
	} else if ok {
		cache.Restore(s)
	}

	b := bus.New()
	sy := syncer.New(cache, ds, b)
	svc := ledger.New(ds, cache, b, notify.Log{}, cfg.User, cfg.MaxAccounts)

	return &app{
		cfg:     cfg,
		ds:      ds,
		cache:   cache,
		bus:     b,
		snap:    snap,
		sync:    sy,
		svc:     svc,
		unwatch: sy.WatchInvalidations(),
	}, nil
}

// close saves the snapshot and releases the datastore.
func (a *app) close() {
	if err := a.snap.Save(a.cache.Snapshot()); err != nil {
		log.Printf("snapshot not saved: %v", err)
	}
	a.unwatch()
	if err := a.ds.Close(); err != nil {
		log.Printf("close db: %v", err)
	}
}
