package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/stats"
)

var (
	statsPeriod  string
	statsYear    int
	statsPair    string
	statsSearch  string
	statsAccount string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show performance statistics",
	Long: `Aggregate the recorded trades into win rate, win/loss counts and
total P&L. Filters apply before aggregation, so the numbers always
describe exactly the trades the filters keep.

Examples:
  tradejournal stats
  tradejournal stats --period week
  tradejournal stats --period quarter --year 2025
  tradejournal stats --pair EUR/USD --search "breakout"`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsPeriod, "period", "all", "week, month, quarter, half-year, year or all")
	statsCmd.Flags().IntVar(&statsYear, "year", time.Now().Year(), "year the period is anchored to")
	statsCmd.Flags().StringVar(&statsPair, "pair", "", "restrict to one instrument")
	statsCmd.Flags().StringVar(&statsSearch, "search", "", "free-text match over pair, emotion and notes")
	statsCmd.Flags().StringVar(&statsAccount, "account", "", "restrict to one account (default: active account)")
}

func runStats(cmd *cobra.Command, args []string) error {
	period, err := stats.ParsePeriod(statsPeriod)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	if err := a.sync.SyncAccounts(ctx, a.cfg.User); err != nil {
		return err
	}
	if err := a.sync.SyncTrades(ctx, a.cfg.User); err != nil {
		return err
	}

	accountID := statsAccount
	if accountID == "" {
		accountID = a.cache.ActiveAccountID()
	}

	trades := a.cache.Trades()
	trades = stats.FilterByAccount(trades, accountID)
	trades = stats.FilterByPeriod(trades, period, statsYear, time.Now())
	trades = stats.FilterByPair(trades, statsPair)
	trades = stats.Search(trades, statsSearch)

	st := stats.Compute(trades)

	fmt.Println("==================================================")
	fmt.Println(" Performance")
	fmt.Println("==================================================")
	if acc, ok := a.cache.AccountByID(accountID); ok {
		fmt.Printf("Account:       %s (%s)\n", acc.Name, acc.Type)
		fmt.Printf("Balance:       %.2f (initial %.2f)\n", acc.Balance, acc.InitialBalance)
	}
	fmt.Printf("Period:        %s %d\n", period, statsYear)
	if statsPair != "" {
		fmt.Printf("Instrument:    %s\n", statsPair)
	}
	fmt.Println("--------------------------------------------------")
	fmt.Printf("Trades:        %d\n", st.TotalTrades)
	fmt.Printf("Wins:          %d\n", st.WinningTrades)
	fmt.Printf("Losses:        %d\n", st.LosingTrades)
	fmt.Printf("Win Rate:      %.1f%%\n", st.WinRate)
	fmt.Printf("Total P&L:     %+.2f\n", st.TotalPnL)
	return nil
}
