package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

var (
	// ErrInconsistentLedger is returned when registry-wide totals do not balance.
	ErrInconsistentLedger = errors.New("ledger is inconsistent")
)

// LedgerTotals aggregates balances and flows over every registered account.
type LedgerTotals struct {
	Accounts     int
	Opening      decimal.Decimal
	Balance      decimal.Decimal
	Deposits     decimal.Decimal
	Withdrawals  decimal.Decimal
	TransfersOut decimal.Decimal
	TransfersIn  decimal.Decimal
}

// LedgerUseCase handles registry-wide operations.
type LedgerUseCase struct {
	accountRepo AccountRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(accountRepo AccountRepository) *LedgerUseCase {
	return &LedgerUseCase{
		accountRepo: accountRepo,
	}
}

// TotalBalance returns the sum of all account balances.
func (uc *LedgerUseCase) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	totals, err := uc.Totals(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return totals.Balance, nil
}

// Totals sums balances and history flows across accounts. All accounts are
// read under one barrier, so a transfer is either fully counted or not at all.
func (uc *LedgerUseCase) Totals(ctx context.Context) (*LedgerTotals, error) {
	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	totals := &LedgerTotals{
		Accounts:     len(accounts),
		Opening:      decimal.Zero,
		Balance:      decimal.Zero,
		Deposits:     decimal.Zero,
		Withdrawals:  decimal.Zero,
		TransfersOut: decimal.Zero,
		TransfersIn:  decimal.Zero,
	}

	for _, snap := range domain.SnapshotAll(accounts) {
		totals.Opening = totals.Opening.Add(snap.OpeningBalance)
		totals.Balance = totals.Balance.Add(snap.Balance)

		for _, r := range snap.History {
			switch r.Kind {
			case domain.RecordDeposit:
				totals.Deposits = totals.Deposits.Add(r.Amount)
			case domain.RecordWithdrawal:
				totals.Withdrawals = totals.Withdrawals.Add(r.Amount)
			case domain.RecordTransferOut:
				totals.TransfersOut = totals.TransfersOut.Add(r.Amount)
			case domain.RecordTransferIn:
				totals.TransfersIn = totals.TransfersIn.Add(r.Amount)
			}
		}
	}

	return totals, nil
}

// Verify checks that every transfer out has a matching transfer in and that
// balances follow from opening balances and recorded flows.
func (t *LedgerTotals) Verify() error {
	if !t.TransfersOut.Equal(t.TransfersIn) {
		return fmt.Errorf(
			"%w: out=%s in=%s difference=%s",
			ErrInconsistentLedger,
			t.TransfersOut.String(),
			t.TransfersIn.String(),
			t.TransfersOut.Sub(t.TransfersIn).String(),
		)
	}

	expected := t.Opening.Add(t.Deposits).Sub(t.Withdrawals)
	if !expected.Equal(t.Balance) {
		return fmt.Errorf("%w: expected balance %s, recorded %s", ErrInconsistentLedger, expected.String(), t.Balance.String())
	}

	return nil
}

// CheckConsistency verifies the registry-wide totals. A transfer to or from
// an account outside the registry makes the ledger inconsistent.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context) (bool, error) {
	totals, err := uc.Totals(ctx)
	if err != nil {
		return false, err
	}

	if err := totals.Verify(); err != nil {
		return false, err
	}

	return true, nil
}
