package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/usecase"
)

func interestCmd() *cobra.Command {
	var (
		kind    string
		balance string
		rate    string
		periods int
	)

	cmd := &cobra.Command{
		Use:   "interest",
		Short: "Quote one year of interest for an ad-hoc account",
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := domain.ParseKind(kind)
			if err != nil {
				return err
			}

			amount, err := decimal.NewFromString(balance)
			if err != nil {
				return fmt.Errorf("%w: balance %q", domain.ErrInvalidAmount, balance)
			}

			r, err := decimal.NewFromString(rate)
			if err != nil {
				return fmt.Errorf("%w: rate %q", domain.ErrInvalidRate, rate)
			}

			a, err := loadApp(cmd)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("periods") {
				periods = a.cfg.CompoundingFrequency
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			account, err := a.accounts.OpenAccount(ctx, usecase.OpenAccountInput{
				Kind:           k,
				ID:             "quote",
				HolderName:     "Quote",
				Holders:        []string{"Quote"},
				InitialBalance: amount,
				Rate:           r,
			})
			if err != nil {
				return err
			}

			quote, err := a.accounts.CalculateInterest(ctx, usecase.CalculateInterestInput{
				AccountID: account.ID(),
				Periods:   periods,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s account, balance %s, rate %s, %d periods: interest %s\n",
				quote.Kind.Label(),
				quote.Balance.StringFixed(domain.MoneyScale),
				quote.Rate.String(),
				quote.Periods,
				quote.Interest.StringFixed(domain.MoneyScale),
			)

			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", string(domain.KindSavings), "Account kind (savings, checking, credit, joint)")
	cmd.Flags().StringVar(&balance, "balance", "0", "Account balance")
	cmd.Flags().StringVar(&rate, "rate", "0", "Annual rate, credit accounts only")
	cmd.Flags().IntVar(&periods, "periods", 0, "Compounding periods per year (default COMPOUNDING_FREQUENCY)")

	return cmd
}
