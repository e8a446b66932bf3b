package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// HistoryUseCase handles read access to account histories.
type HistoryUseCase struct {
	accountRepo AccountRepository
}

// NewHistoryUseCase creates a new HistoryUseCase.
func NewHistoryUseCase(accountRepo AccountRepository) *HistoryUseCase {
	return &HistoryUseCase{
		accountRepo: accountRepo,
	}
}

// GetHistoryInput represents input for listing history records.
type GetHistoryInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// GetHistory lists history records for an account, oldest first.
func (uc *HistoryUseCase) GetHistory(ctx context.Context, input GetHistoryInput) ([]domain.Record, error) {
	limit, offset := normalizePage(input.Limit, input.Offset)

	account, err := uc.accountRepo.GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	return page(account.History(), limit, offset), nil
}

// GetHistoryLines returns the full history of an account in audit log form.
func (uc *HistoryUseCase) GetHistoryLines(ctx context.Context, accountID string) ([]string, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return account.HistoryLines(), nil
}

// GetHistoricalBalance returns the balance at a specific point in time: the
// balance after the last record created at or before at, or the opening
// balance when there is none.
func (uc *HistoryUseCase) GetHistoricalBalance(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	snap := account.Snapshot()
	balance := snap.OpeningBalance

	for _, r := range snap.History {
		if r.CreatedAt.After(at) {
			break
		}
		balance = r.BalanceAfter
	}

	return balance, nil
}
