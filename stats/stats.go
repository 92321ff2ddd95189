// Package stats folds trade slices into the aggregates shown on the
// dashboard. Everything here is pure: inputs are never mutated and
// filters always run before Compute, so displayed aggregates match the
// visible trade list.
package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rustyeddy/tradejournal/journal"
)

// Stats is the aggregate view over a trade slice.
type Stats struct {
	TotalTrades   int
	WinningTrades int
	LosingTrades  int
	TotalPnL      float64
	WinRate       float64
}

// Compute aggregates the input. Wins are net P/L > 0, losses < 0; a
// trade with net P/L exactly 0 counts in neither bucket. WinRate is
// wins/total*100 rounded to one decimal, 0 when the input is empty.
func Compute(trades []journal.Trade) Stats {
	var st Stats
	st.TotalTrades = len(trades)

	for _, t := range trades {
		switch {
		case t.NetPL > 0:
			st.WinningTrades++
		case t.NetPL < 0:
			st.LosingTrades++
		}
		st.TotalPnL += t.NetPL
	}

	if st.TotalTrades > 0 {
		rate := float64(st.WinningTrades) / float64(st.TotalTrades) * 100
		st.WinRate = math.Round(rate*10) / 10
	}
	return st
}

// FilterByPair keeps trades on the given instrument. An empty pair
// means no restriction.
func FilterByPair(trades []journal.Trade, pair string) []journal.Trade {
	if pair == "" {
		return append([]journal.Trade(nil), trades...)
	}
	var out []journal.Trade
	for _, t := range trades {
		if t.Pair == pair {
			out = append(out, t)
		}
	}
	return out
}

// FilterByAccount keeps trades belonging to the given account. An
// empty id means no restriction.
func FilterByAccount(trades []journal.Trade, accountID string) []journal.Trade {
	if accountID == "" {
		return append([]journal.Trade(nil), trades...)
	}
	var out []journal.Trade
	for _, t := range trades {
		if t.AccountID == accountID {
			out = append(out, t)
		}
	}
	return out
}

// Search keeps trades whose pair, emotion or notes contain term,
// case-insensitively. An empty term means no restriction.
func Search(trades []journal.Trade, term string) []journal.Trade {
	if term == "" {
		return append([]journal.Trade(nil), trades...)
	}
	needle := strings.ToLower(term)

	var out []journal.Trade
	for _, t := range trades {
		if strings.Contains(strings.ToLower(t.Pair), needle) ||
			strings.Contains(strings.ToLower(string(t.Emotion)), needle) ||
			strings.Contains(strings.ToLower(t.Notes), needle) {
			out = append(out, t)
		}
	}
	return out
}

// SortKey selects the column trades are ordered by.
type SortKey string

const (
	ByDate SortKey = "date"
	ByPair SortKey = "pair"
	ByPnL  SortKey = "pnl"
)

// ParseSortKey converts a flag value into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case ByDate, ByPair, ByPnL:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// SortTrades returns a sorted copy of trades. Unknown keys sort by
// date.
func SortTrades(trades []journal.Trade, key SortKey, ascending bool) []journal.Trade {
	out := append([]journal.Trade(nil), trades...)

	less := func(a, b journal.Trade) bool { return a.Time.Before(b.Time) }
	switch key {
	case ByPair:
		less = func(a, b journal.Trade) bool { return a.Pair < b.Pair }
	case ByPnL:
		less = func(a, b journal.Trade) bool { return a.NetPL < b.NetPL }
	}

	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})
	return out
}
