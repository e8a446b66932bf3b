package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer describes a money movement between two registered accounts.
type Transfer struct {
	CreatedAt     time.Time
	ID            string
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
}

// Validate validates transfer request.
func (t *Transfer) Validate() error {
	if err := ValidateAccountID(t.FromAccountID); err != nil {
		return err
	}

	if err := ValidateAccountID(t.ToAccountID); err != nil {
		return err
	}

	if t.FromAccountID == t.ToAccountID {
		return ErrSameAccount
	}

	return ValidateAmount(t.Amount)
}
