package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// ReconciliationUseCase checks account balances against their histories.
type ReconciliationUseCase struct {
	accountRepo AccountRepository
	ledger      *LedgerUseCase
}

// NewReconciliationUseCase creates a new reconciliation use case.
func NewReconciliationUseCase(accountRepo AccountRepository) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		accountRepo: accountRepo,
		ledger:      NewLedgerUseCase(accountRepo),
	}
}

// ReconciliationResult represents the result of a reconciliation check.
type ReconciliationResult struct {
	AccountID         string
	RecordedBalance   decimal.Decimal
	CalculatedBalance decimal.Decimal
	Difference        decimal.Decimal
	IsReconciled      bool
	LastChecked       time.Time
}

// ReconcileAccount replays the history of an account from its opening
// balance and compares the result with the recorded balance. The last
// record's balance must match too.
func (uc *ReconciliationUseCase) ReconcileAccount(ctx context.Context, accountID string) (*ReconciliationResult, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return reconcile(account.Snapshot()), nil
}

func reconcile(snap domain.Snapshot) *ReconciliationResult {
	calculated := domain.ReplayBalance(snap.OpeningBalance, snap.History)
	difference := snap.Balance.Sub(calculated)

	reconciled := difference.IsZero()
	if n := len(snap.History); n > 0 && !snap.History[n-1].BalanceAfter.Equal(snap.Balance) {
		reconciled = false
	}

	return &ReconciliationResult{
		AccountID:         snap.ID,
		RecordedBalance:   snap.Balance,
		CalculatedBalance: calculated,
		Difference:        difference,
		IsReconciled:      reconciled,
		LastChecked:       time.Now().UTC(),
	}
}

// ReconcileAllAccounts reconciles all accounts in the registry.
func (uc *ReconciliationUseCase) ReconcileAllAccounts(ctx context.Context) ([]*ReconciliationResult, error) {
	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*ReconciliationResult, 0, len(accounts))
	for _, snap := range domain.SnapshotAll(accounts) {
		results = append(results, reconcile(snap))
	}

	return results, nil
}

// CheckLedgerConsistency verifies registry-wide totals. Inconsistencies match
// ErrInconsistentLedger; any other error comes from the registry.
func (uc *ReconciliationUseCase) CheckLedgerConsistency(ctx context.Context) error {
	_, err := uc.ledger.CheckConsistency(ctx)
	return err
}

// ReconciliationReport represents a full reconciliation report.
type ReconciliationReport struct {
	TotalAccounts      int
	ReconciledAccounts int
	Discrepancies      []*ReconciliationResult
	LedgerConsistent   bool
	CheckedAt          time.Time
}

// GenerateReconciliationReport reconciles every account and checks transfer consistency.
func (uc *ReconciliationUseCase) GenerateReconciliationReport(ctx context.Context) (*ReconciliationReport, error) {
	results, err := uc.ReconcileAllAccounts(ctx)
	if err != nil {
		return nil, err
	}

	ledgerErr := uc.CheckLedgerConsistency(ctx)
	if ledgerErr != nil && !errors.Is(ledgerErr, ErrInconsistentLedger) {
		return nil, ledgerErr
	}

	report := &ReconciliationReport{
		TotalAccounts:    len(results),
		Discrepancies:    make([]*ReconciliationResult, 0),
		LedgerConsistent: ledgerErr == nil,
		CheckedAt:        time.Now().UTC(),
	}

	for _, result := range results {
		if result.IsReconciled {
			report.ReconciledAccounts++
		} else {
			report.Discrepancies = append(report.Discrepancies, result)
		}
	}

	return report, nil
}
