package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind classifies a history record.
type RecordKind string

const (
	RecordDeposit       RecordKind = "deposit"
	RecordWithdrawal    RecordKind = "withdrawal"
	RecordTransferOut   RecordKind = "transfer_out"
	RecordTransferIn    RecordKind = "transfer_in"
	RecordJointTransfer RecordKind = "joint_transfer"
)

// Record is a single entry of an account's transaction history.
type Record struct {
	CreatedAt      time.Time
	Kind           RecordKind
	CounterpartyID string
	Amount         decimal.Decimal
	BalanceAfter   decimal.Decimal
	Seq            int
}

// String renders the record in the audit log text form.
func (r Record) String() string {
	amount := r.Amount.StringFixed(MoneyScale)

	switch r.Kind {
	case RecordDeposit:
		return "Deposit: +" + amount
	case RecordWithdrawal:
		return "Withdrawal: -" + amount
	case RecordTransferOut:
		return fmt.Sprintf("Transfer: -%s to %s", amount, r.CounterpartyID)
	case RecordTransferIn:
		return fmt.Sprintf("Transfer: +%s from %s", amount, r.CounterpartyID)
	case RecordJointTransfer:
		return fmt.Sprintf("Joint Transfer: -%s to %s", amount, r.CounterpartyID)
	default:
		return fmt.Sprintf("%s: %s", r.Kind, amount)
	}
}

// FormatHistory renders records in order, one string per record.
func FormatHistory(records []Record) []string {
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return lines
}

// ReplayBalance recomputes a balance from the opening balance and the
// deposit/withdrawal records. Transfer annotations carry no balance effect.
func ReplayBalance(opening decimal.Decimal, records []Record) decimal.Decimal {
	balance := opening
	for _, r := range records {
		switch r.Kind {
		case RecordDeposit:
			balance = balance.Add(r.Amount)
		case RecordWithdrawal:
			balance = balance.Sub(r.Amount)
		}
	}
	return balance
}
