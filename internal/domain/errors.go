package domain

import (
	"errors"
	"fmt"
)

var (
	// Base error kinds. Every error returned by an account operation matches
	// one of these with errors.Is.
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidArgument   = errors.New("invalid argument")

	// Argument errors
	ErrInvalidAmount      = fmt.Errorf("%w: amount must be non-negative with at most %d decimal places", ErrInvalidArgument, MoneyScale)
	ErrInvalidCompounding = fmt.Errorf("%w: compounding frequency must be positive", ErrInvalidArgument)
	ErrSameAccount        = fmt.Errorf("%w: cannot transfer to same account", ErrInvalidArgument)
	ErrNilAccount         = fmt.Errorf("%w: account is nil", ErrInvalidArgument)
	ErrInvalidAccountID   = fmt.Errorf("%w: account id cannot be empty", ErrInvalidArgument)
	ErrInvalidRate        = fmt.Errorf("%w: interest rate must be non-negative", ErrInvalidArgument)
	ErrInvalidHolders     = fmt.Errorf("%w: joint account needs distinct, non-empty holder names", ErrInvalidArgument)
	ErrInvalidKind        = fmt.Errorf("%w: unknown account kind", ErrInvalidArgument)

	// Registry errors
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
)
