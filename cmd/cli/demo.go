package main

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
	"github.com/iho/gobank/internal/usecase"
)

func demoCmd() *cobra.Command {
	var dumpMetrics bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a savings/checking walkthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			if err := runDemo(cmd.Context(), a, cmd.OutOrStdout()); err != nil {
				return err
			}

			if dumpMetrics {
				fmt.Fprintln(cmd.OutOrStdout())
				return metrics.WriteText(cmd.OutOrStdout(), a.registry)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dumpMetrics, "metrics", false, "Print collected metrics in Prometheus text format")

	return cmd
}

func runDemo(ctx context.Context, a *app, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	savings, err := a.accounts.OpenAccount(ctx, usecase.OpenAccountInput{
		Kind:           domain.KindSavings,
		ID:             "123456",
		HolderName:     "John Doe",
		InitialBalance: decimal.NewFromInt(1000),
	})
	if err != nil {
		return err
	}

	checking, err := a.accounts.OpenAccount(ctx, usecase.OpenAccountInput{
		Kind:           domain.KindChecking,
		ID:             "987654",
		HolderName:     "Bob Smith",
		InitialBalance: decimal.NewFromInt(1500),
	})
	if err != nil {
		return err
	}

	steps := []struct {
		fn    func(context.Context, usecase.AmountInput) (*usecase.Receipt, error)
		input usecase.AmountInput
	}{
		{a.accounts.Deposit, usecase.AmountInput{AccountID: savings.ID(), Amount: decimal.NewFromInt(500)}},
		{a.accounts.Withdraw, usecase.AmountInput{AccountID: savings.ID(), Amount: decimal.NewFromInt(300)}},
		{a.accounts.Deposit, usecase.AmountInput{AccountID: checking.ID(), Amount: decimal.NewFromInt(200)}},
	}
	for _, step := range steps {
		if _, err := step.fn(ctx, step.input); err != nil {
			return err
		}
	}

	if _, err := a.transfers.CreateTransfer(ctx, usecase.CreateTransferInput{
		FromAccountID: savings.ID(),
		ToAccountID:   checking.ID(),
		Amount:        decimal.NewFromInt(200),
	}); err != nil {
		return err
	}

	savingsQuote, err := a.accounts.CalculateInterest(ctx, usecase.CalculateInterestInput{
		AccountID: savings.ID(),
		Periods:   a.cfg.CompoundingFrequency,
	})
	if err != nil {
		return err
	}

	checkingQuote, err := a.accounts.CalculateInterest(ctx, usecase.CalculateInterestInput{
		AccountID: checking.ID(),
		Periods:   a.cfg.CompoundingFrequency,
	})
	if err != nil {
		return err
	}

	lines, err := a.history.GetHistoryLines(ctx, savings.ID())
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Transaction History for Savings Account:")
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}

	fmt.Fprintf(out, "Interest earned on Savings Account: %s\n", savingsQuote.Interest.StringFixed(domain.MoneyScale))
	fmt.Fprintf(out, "Interest earned on Checking Account: %s\n", checkingQuote.Interest.StringFixed(domain.MoneyScale))

	total, err := a.ledger.TotalBalance(ctx)
	if err != nil {
		return err
	}

	report, err := a.reconciliation.GenerateReconciliationReport(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Total balance: %s\n", total.StringFixed(domain.MoneyScale))
	fmt.Fprintf(out, "Reconciled accounts: %d/%d, ledger consistent: %t\n",
		report.ReconciledAccounts, report.TotalAccounts, report.LedgerConsistent)

	return nil
}
