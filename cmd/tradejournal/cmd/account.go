package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradejournal/journal"
	"github.com/rustyeddy/tradejournal/stats"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage trading accounts",
	Long: `Create, list and delete trading accounts, move money in and out,
and choose the active account new trades default to.

Examples:
  tradejournal account create --name "FTMO 10k" --type Challenge --balance 10000
  tradejournal account list
  tradejournal account edit <account-id> --name "FTMO 10k (passed)" --type Live
  tradejournal account deposit <account-id> 500
  tradejournal account withdraw <account-id> 250
  tradejournal account activate <account-id>
  tradejournal account delete <account-id>`,
}

var (
	accountName    string
	accountBroker  string
	accountType    string
	accountBalance float64
)

var accountCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a trading account",
	Args:  cobra.NoArgs,
	RunE:  runAccountCreate,
}

var accountListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts with balances and performance",
	Args:  cobra.NoArgs,
	RunE:  runAccountList,
}

var accountEditCmd = &cobra.Command{
	Use:   "edit <account-id>",
	Short: "Edit an account's name, broker or type",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountEdit,
}

var accountDeleteCmd = &cobra.Command{
	Use:   "delete <account-id>",
	Short: "Delete an account and all its trades",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountDelete,
}

var accountActivateCmd = &cobra.Command{
	Use:   "activate <account-id>",
	Short: "Make an account the active one",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountActivate,
}

var accountDepositCmd = &cobra.Command{
	Use:   "deposit <account-id> <amount>",
	Short: "Deposit money into an account",
	Args:  cobra.ExactArgs(2),
	RunE:  runAccountDeposit,
}

var accountWithdrawCmd = &cobra.Command{
	Use:   "withdraw <account-id> <amount>",
	Short: "Withdraw money from an account",
	Args:  cobra.ExactArgs(2),
	RunE:  runAccountWithdraw,
}

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(accountCreateCmd)
	accountCmd.AddCommand(accountListCmd)
	accountCmd.AddCommand(accountEditCmd)
	accountCmd.AddCommand(accountDeleteCmd)
	accountCmd.AddCommand(accountActivateCmd)
	accountCmd.AddCommand(accountDepositCmd)
	accountCmd.AddCommand(accountWithdrawCmd)

	accountCreateCmd.Flags().StringVar(&accountName, "name", "", "account display name (required)")
	accountCreateCmd.Flags().StringVar(&accountBroker, "broker", "", "broker name")
	accountCreateCmd.Flags().StringVar(&accountType, "type", "Demo", "account type: Live, Demo or Challenge")
	accountCreateCmd.Flags().Float64Var(&accountBalance, "balance", 0, "initial balance")

	accountEditCmd.Flags().StringVar(&accountName, "name", "", "new display name")
	accountEditCmd.Flags().StringVar(&accountBroker, "broker", "", "new broker name")
	accountEditCmd.Flags().StringVar(&accountType, "type", "", "new account type: Live, Demo or Challenge")
}

func runAccountCreate(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	created, err := a.svc.CreateAccount(cmd.Context(), accountName, accountBroker,
		journal.AccountType(accountType), accountBalance)
	if err != nil {
		return err
	}

	fmt.Printf("created account %s (%s)\n", created.Name, created.ID)
	return nil
}

func runAccountList(cmd *cobra.Command, args []string) error {
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

	accounts := a.cache.Accounts()
	if len(accounts) == 0 {
		fmt.Println("no accounts yet")
		return nil
	}

	active := a.cache.ActiveAccountID()
	for _, acc := range accounts {
		marker := " "
		if acc.ID == active {
			marker = "*"
		}
		st := stats.Compute(a.cache.TradesForAccount(acc.ID))
		net := acc.Balance - acc.InitialBalance
		fmt.Printf("%s %-20s %-10s balance %10.2f  net %+10.2f  trades %3d  win rate %5.1f%%\n",
			marker, acc.Name, acc.Type, acc.Balance, net, st.TotalTrades, st.WinRate)
		fmt.Printf("  id %s  broker %s  created %s\n",
			acc.ID, acc.Broker, acc.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func runAccountEdit(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	acc, err := a.ds.GetAccount(ctx, args[0])
	if err != nil {
		return err
	}

	// Fields without a flag keep their current value.
	if cmd.Flags().Changed("name") {
		acc.Name = accountName
	}
	if cmd.Flags().Changed("broker") {
		acc.Broker = accountBroker
	}
	if cmd.Flags().Changed("type") {
		acc.Type = journal.AccountType(accountType)
	}

	if err := a.svc.UpdateAccount(ctx, acc.ID, acc.Name, acc.Broker, acc.Type); err != nil {
		return err
	}
	fmt.Printf("updated account %s\n", acc.ID)
	return nil
}

func runAccountDelete(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.svc.DeleteAccount(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Println("account deleted")
	return nil
}

func runAccountActivate(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	if err := a.sync.SyncAccounts(ctx, a.cfg.User); err != nil {
		return err
	}
	if _, ok := a.cache.AccountByID(args[0]); !ok {
		return fmt.Errorf("account %q: %w", args[0], journal.ErrNotFound)
	}
	a.cache.SetActiveAccount(args[0])
	fmt.Println("active account set")
	return nil
}

func runAccountDeposit(cmd *cobra.Command, args []string) error {
	return runBalanceChange(cmd, args, true)
}

func runAccountWithdraw(cmd *cobra.Command, args []string) error {
	return runBalanceChange(cmd, args, false)
}

func runBalanceChange(cmd *cobra.Command, args []string, deposit bool) error {
	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	if deposit {
		err = a.svc.Deposit(ctx, args[0], amount)
	} else {
		err = a.svc.Withdraw(ctx, args[0], amount)
	}
	if err != nil {
		return err
	}

	acc, err := a.ds.GetAccount(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("new balance: %.2f\n", acc.Balance)
	return nil
}
