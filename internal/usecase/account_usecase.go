package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// AccountUseCase handles account business logic.
type AccountUseCase struct {
	accountRepo AccountRepository
	idGen       IDGenerator
	metrics     Metrics
	logger      zerolog.Logger
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, idGen IDGenerator, metrics Metrics, logger zerolog.Logger) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		idGen:       idGen,
		metrics:     metrics,
		logger:      logger,
	}
}

// OpenAccountInput represents input for opening an account. HolderName is
// ignored for joint accounts, Holders for every other kind, Rate for every
// kind but credit.
type OpenAccountInput struct {
	Kind           domain.AccountKind
	ID             string
	HolderName     string
	Holders        []string
	InitialBalance decimal.Decimal
	Rate           decimal.Decimal
}

// Receipt describes the outcome of a balance-changing operation.
type Receipt struct {
	CreatedAt   time.Time
	OperationID string
	AccountID   string
	Balance     decimal.Decimal
}

// InterestQuote is the result of an interest calculation.
type InterestQuote struct {
	AccountID string
	Kind      domain.AccountKind
	Periods   int
	Rate      decimal.Decimal
	Balance   decimal.Decimal
	Interest  decimal.Decimal
}

// OpenAccount builds an account of the requested kind and registers it.
func (uc *AccountUseCase) OpenAccount(ctx context.Context, input OpenAccountInput) (*domain.Account, error) {
	account, err := buildAccount(input)
	if err == nil {
		err = uc.accountRepo.Create(ctx, account)
	}

	uc.metrics.OperationCompleted(OperationOpen, err)
	if err != nil {
		uc.logger.Warn().
			Err(err).
			Str("account_id", input.ID).
			Str("kind", string(input.Kind)).
			Msg("open account failed")
		return nil, err
	}

	uc.metrics.AccountOpened(account.Kind())
	uc.metrics.BalanceChanged(account.ID(), account.Kind(), account.Balance())

	uc.logger.Info().
		Str("account_id", account.ID()).
		Str("kind", string(account.Kind())).
		Str("balance", account.Balance().StringFixed(domain.MoneyScale)).
		Msg("account opened")

	return account, nil
}

func buildAccount(input OpenAccountInput) (*domain.Account, error) {
	switch input.Kind {
	case domain.KindSavings:
		return domain.NewSavingsAccount(input.ID, input.HolderName, input.InitialBalance)
	case domain.KindChecking:
		return domain.NewCheckingAccount(input.ID, input.HolderName, input.InitialBalance)
	case domain.KindCredit:
		return domain.NewCreditAccount(input.ID, input.HolderName, input.InitialBalance, input.Rate)
	case domain.KindJoint:
		return domain.NewJointAccount(input.ID, input.Holders, input.InitialBalance)
	default:
		return nil, domain.ErrInvalidKind
	}
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	limit, offset := normalizePage(input.Limit, input.Offset)

	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return page(accounts, limit, offset), nil
}

// AmountInput represents input for a single-account deposit or withdrawal.
type AmountInput struct {
	AccountID string
	Amount    decimal.Decimal
}

// Deposit credits an account.
func (uc *AccountUseCase) Deposit(ctx context.Context, input AmountInput) (*Receipt, error) {
	return uc.apply(ctx, OperationDeposit, input, (*domain.Account).Deposit)
}

// Withdraw debits an account.
func (uc *AccountUseCase) Withdraw(ctx context.Context, input AmountInput) (*Receipt, error) {
	return uc.apply(ctx, OperationWithdraw, input, (*domain.Account).Withdraw)
}

func (uc *AccountUseCase) apply(
	ctx context.Context,
	operation string,
	input AmountInput,
	fn func(*domain.Account, decimal.Decimal) error,
) (*Receipt, error) {
	opID := uc.idGen.Generate()
	log := uc.logger.With().
		Str("operation", operation).
		Str("operation_id", opID).
		Str("account_id", input.AccountID).
		Str("amount", input.Amount.String()).
		Logger()

	account, err := uc.accountRepo.GetByID(ctx, input.AccountID)
	if err == nil {
		err = fn(account, input.Amount)
	}

	uc.metrics.OperationCompleted(operation, err)
	if err != nil {
		log.Warn().Err(err).Msg("operation rejected")
		return nil, err
	}

	balance := account.Balance()
	uc.metrics.BalanceChanged(account.ID(), account.Kind(), balance)
	log.Info().Str("balance", balance.StringFixed(domain.MoneyScale)).Msg("operation completed")

	return &Receipt{
		CreatedAt:   time.Now().UTC(),
		OperationID: opID,
		AccountID:   account.ID(),
		Balance:     balance,
	}, nil
}

// CalculateInterestInput represents input for an interest quote.
type CalculateInterestInput struct {
	AccountID string
	Periods   int
}

// CalculateInterest quotes the interest an account would earn over a year
// without crediting it. Periods must be positive.
func (uc *AccountUseCase) CalculateInterest(ctx context.Context, input CalculateInterestInput) (*InterestQuote, error) {
	periods := input.Periods

	account, err := uc.accountRepo.GetByID(ctx, input.AccountID)
	if err != nil {
		uc.metrics.OperationCompleted(OperationInterest, err)
		return nil, err
	}

	snap := account.Snapshot()
	interest, err := account.InterestOn(snap.Balance, periods)
	uc.metrics.OperationCompleted(OperationInterest, err)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug().
		Str("account_id", snap.ID).
		Int("periods", periods).
		Str("interest", interest.String()).
		Msg("interest calculated")

	return &InterestQuote{
		AccountID: snap.ID,
		Kind:      snap.Kind,
		Periods:   periods,
		Rate:      snap.InterestRate,
		Balance:   snap.Balance,
		Interest:  interest,
	}, nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}

	end := offset + limit
	if end > len(items) {
		end = len(items)
	}

	return items[offset:end]
}
