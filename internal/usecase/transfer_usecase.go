package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

// TransferUseCase handles transfer business logic.
type TransferUseCase struct {
	accountRepo AccountRepository
	idGen       IDGenerator
	metrics     Metrics
	logger      zerolog.Logger
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(
	accountRepo AccountRepository,
	idGen IDGenerator,
	metrics Metrics,
	logger zerolog.Logger,
) *TransferUseCase {
	return &TransferUseCase{
		accountRepo: accountRepo,
		idGen:       idGen,
		metrics:     metrics,
		logger:      logger,
	}
}

// CreateTransferInput represents input for creating a transfer.
type CreateTransferInput struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
}

// CreateTransfer moves funds between two registered accounts. On any error
// neither account is changed.
func (uc *TransferUseCase) CreateTransfer(ctx context.Context, input CreateTransferInput) (*domain.Transfer, error) {
	transfer := &domain.Transfer{
		ID:            uc.idGen.Generate(),
		FromAccountID: input.FromAccountID,
		ToAccountID:   input.ToAccountID,
		Amount:        input.Amount,
		CreatedAt:     time.Now().UTC(),
	}

	log := uc.logger.With().
		Str("operation", OperationTransfer).
		Str("operation_id", transfer.ID).
		Str("from_account_id", transfer.FromAccountID).
		Str("to_account_id", transfer.ToAccountID).
		Str("amount", transfer.Amount.String()).
		Logger()

	from, to, err := uc.processTransfer(ctx, transfer)

	uc.metrics.OperationCompleted(OperationTransfer, err)
	if err != nil {
		log.Warn().Err(err).Msg("transfer rejected")
		return nil, err
	}

	uc.metrics.TransferCompleted(transfer.Amount)
	uc.metrics.BalanceChanged(from.ID(), from.Kind(), from.Balance())
	uc.metrics.BalanceChanged(to.ID(), to.Kind(), to.Balance())

	log.Info().Msg("transfer completed")

	return transfer, nil
}

func (uc *TransferUseCase) processTransfer(ctx context.Context, transfer *domain.Transfer) (*domain.Account, *domain.Account, error) {
	if err := transfer.Validate(); err != nil {
		return nil, nil, err
	}

	from, err := uc.accountRepo.GetByID(ctx, transfer.FromAccountID)
	if err != nil {
		return nil, nil, err
	}

	to, err := uc.accountRepo.GetByID(ctx, transfer.ToAccountID)
	if err != nil {
		return nil, nil, err
	}

	if err := from.Transfer(to, transfer.Amount); err != nil {
		return nil, nil, err
	}

	return from, to, nil
}
