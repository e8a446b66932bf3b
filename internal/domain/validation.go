package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	// MoneyScale is the number of fractional digits a monetary amount may carry.
	MoneyScale = 2

	MaxAccountIDLength  = 64
	MaxHolderNameLength = 255
)

// ValidateAmount checks that amount is a non-negative value in whole cents.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}

	if !amount.Equal(amount.Truncate(MoneyScale)) {
		return ErrInvalidAmount
	}

	return nil
}

// ValidateAccountID validates an account identifier.
func ValidateAccountID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidAccountID
	}

	if len(id) > MaxAccountIDLength {
		return fmt.Errorf("%w: id exceeds %d characters", ErrInvalidArgument, MaxAccountIDLength)
	}

	return nil
}

// ValidateRate validates a nominal annual interest rate.
func ValidateRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return ErrInvalidRate
	}
	return nil
}

// ValidateHolders validates the participant list of a joint account.
func ValidateHolders(holders []string) error {
	if len(holders) == 0 {
		return ErrInvalidHolders
	}

	seen := make(map[string]bool, len(holders))
	for _, h := range holders {
		name := strings.TrimSpace(h)
		if name == "" || len(name) > MaxHolderNameLength {
			return ErrInvalidHolders
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate holder %q", ErrInvalidHolders, name)
		}
		seen[name] = true
	}

	return nil
}

// ValidateCompounding validates the number of compounding periods per year.
func ValidateCompounding(periods int) error {
	if periods <= 0 {
		return ErrInvalidCompounding
	}
	return nil
}
