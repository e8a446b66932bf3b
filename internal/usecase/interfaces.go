package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// AccountRepository defines access to the process-wide account registry.
type AccountRepository interface {
	// Create stores account, failing with domain.ErrAccountExists when its id
	// is taken.
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	// List returns all accounts in the order they were created.
	List(ctx context.Context) ([]*domain.Account, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Metrics receives operation outcomes.
type Metrics interface {
	AccountOpened(kind domain.AccountKind)
	OperationCompleted(operation string, err error)
	TransferCompleted(amount decimal.Decimal)
	BalanceChanged(accountID string, kind domain.AccountKind, balance decimal.Decimal)
}
