package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/ledger"
	"github.com/rustyeddy/tradejournal/stats"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Record and manage trades",
	Long: `Record trades against an account and manage existing ones.

Adding a trade is two-phase: the computed net P/L (profit/loss minus
commission minus spread) is shown for review, and nothing is written
until you pass --yes.

Examples:
  tradejournal trade add --pair EUR/USD --direction Buy --lots 0.5 --pl 50 --commission 2 --spread 1
  tradejournal trade add --pair GBP/JPY --direction Sell --lots 1 --pl -30 --yes
  tradejournal trade list --sort pnl --desc
  tradejournal trade delete <trade-id>`,
}

var (
	tradeAccount    string
	tradePair       string
	tradeDirection  string
	tradeLots       float64
	tradePL         float64
	tradeCommission float64
	tradeSpread     float64
	tradeTime       string
	tradeEmotion    string
	tradeNotes      string
	tradeYes        bool
	tradeSort       string
	tradeDesc       bool
)

var tradeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a trade (review first, commit with --yes)",
	Args:  cobra.NoArgs,
	RunE:  runTradeAdd,
}

var tradeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded trades",
	Args:  cobra.NoArgs,
	RunE:  runTradeList,
}

var tradeDeleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Delete a trade and reverse its balance contribution",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeDelete,
}

func init() {
	rootCmd.AddCommand(tradeCmd)
	tradeCmd.AddCommand(tradeAddCmd)
	tradeCmd.AddCommand(tradeListCmd)
	tradeCmd.AddCommand(tradeDeleteCmd)

	tradeAddCmd.Flags().StringVar(&tradeAccount, "account", "", "account ID (default: active account)")
	tradeAddCmd.Flags().StringVar(&tradePair, "pair", "", "instrument symbol, e.g. EUR/USD (required)")
	tradeAddCmd.Flags().StringVar(&tradeDirection, "direction", "Buy", "Buy or Sell")
	tradeAddCmd.Flags().Float64Var(&tradeLots, "lots", 0, "lot size (required)")
	tradeAddCmd.Flags().Float64Var(&tradePL, "pl", 0, "gross profit/loss")
	tradeAddCmd.Flags().Float64Var(&tradeCommission, "commission", 0, "commission (positive magnitude)")
	tradeAddCmd.Flags().Float64Var(&tradeSpread, "spread", 0, "spread cost (positive magnitude)")
	tradeAddCmd.Flags().StringVar(&tradeTime, "time", "", "trade time, RFC3339 or 2006-01-02 15:04 (default now)")
	tradeAddCmd.Flags().StringVar(&tradeEmotion, "emotion", "Neutral", "Confident, Neutral, Anxious, Greedy or Fearful")
	tradeAddCmd.Flags().StringVar(&tradeNotes, "notes", "", "free-text notes")
	tradeAddCmd.Flags().BoolVarP(&tradeYes, "yes", "y", false, "commit without interactive confirmation")

	tradeListCmd.Flags().StringVar(&tradeAccount, "account", "", "restrict to one account")
	tradeListCmd.Flags().StringVar(&tradeSort, "sort", "date", "sort by date, pair or pnl")
	tradeListCmd.Flags().BoolVar(&tradeDesc, "desc", false, "sort in descending order")
}

func runTradeAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	if err := a.sync.SyncAccounts(ctx, a.cfg.User); err != nil {
		return err
	}

	accountID := tradeAccount
	if accountID == "" {
		accountID = a.cache.ActiveAccountID()
	}
	if accountID == "" {
		return fmt.Errorf("no account given and no active account set")
	}

	when := time.Now()
	if tradeTime != "" {
		when, err = parseTradeTime(tradeTime)
		if err != nil {
			return err
		}
	}

	draft := ledger.NewDraft(a.svc)
	if err := draft.Edit(journal.Trade{
		AccountID:  accountID,
		Pair:       tradePair,
		Direction:  journal.Direction(tradeDirection),
		LotSize:    tradeLots,
		ProfitLoss: tradePL,
		Commission: tradeCommission,
		Spread:     tradeSpread,
		Time:       when,
		Emotion:    journal.Emotion(tradeEmotion),
		Notes:      tradeNotes,
	}); err != nil {
		return err
	}

	preview, err := draft.Review()
	if err != nil {
		return err
	}

	fmt.Printf("%s %s %.2f lots  gross %+.2f  commission %.2f  spread %.2f\n",
		preview.Direction, preview.Pair, preview.LotSize,
		preview.ProfitLoss, preview.Commission, preview.Spread)
	fmt.Printf("net P/L: %+.2f\n", preview.NetPL)

	if !tradeYes {
		if err := draft.Reject(); err != nil {
			return err
		}
		fmt.Println("not committed; re-run with --yes to record this trade")
		return nil
	}

	created, err := draft.Confirm(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("recorded trade %s\n", created.ID)
	return nil
}

func runTradeList(cmd *cobra.Command, args []string) error {
	key, err := stats.ParseSortKey(tradeSort)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	if err := a.sync.SyncTrades(ctx, a.cfg.User); err != nil {
		return err
	}

	trades := stats.FilterByAccount(a.cache.Trades(), tradeAccount)
	if len(trades) == 0 {
		fmt.Println("no trades recorded")
		return nil
	}
	trades = stats.SortTrades(trades, key, !tradeDesc)

	for _, t := range trades {
		fmt.Printf("%s  %-8s %-4s %6.2f lots  net %+9.2f  %s  %s\n",
			t.Time.Format("2006-01-02 15:04"), t.Pair, t.Direction,
			t.LotSize, t.NetPL, t.Emotion, t.ID)
	}
	return nil
}

func runTradeDelete(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.svc.DeleteTrade(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Println("trade deleted")
	return nil
}

func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w", s, err)
	}
	return v, nil
}

func parseTradeTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("time %q: %w", s, err)
	}
	return t, nil
}
