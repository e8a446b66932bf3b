package domain

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Account is a bank account of one of the four kinds. Balance and history are
// guarded by mu; every other field is fixed at construction.
type Account struct {
	mu         sync.Mutex
	createdAt  time.Time
	id         string
	holderName string
	kind       AccountKind
	holders    []string
	policy     interestPolicy
	opening    decimal.Decimal
	balance    decimal.Decimal
	history    []Record
}

// Snapshot is a consistent point-in-time copy of an account.
type Snapshot struct {
	CreatedAt      time.Time
	ID             string
	HolderName     string
	Kind           AccountKind
	Holders        []string
	InterestRate   decimal.Decimal
	OpeningBalance decimal.Decimal
	Balance        decimal.Decimal
	History        []Record
}

// now is the record clock, replaced in tests.
var now = func() time.Time { return time.Now().UTC() }

func newAccount(id, holderName string, kind AccountKind, balance decimal.Decimal, policy interestPolicy) (*Account, error) {
	if err := ValidateAccountID(id); err != nil {
		return nil, err
	}

	if err := ValidateAmount(balance); err != nil {
		return nil, err
	}

	return &Account{
		createdAt:  now(),
		id:         id,
		holderName: holderName,
		kind:       kind,
		policy:     policy,
		opening:    balance,
		balance:    balance,
	}, nil
}

// NewSavingsAccount creates a savings account earning compound interest at
// SavingsRate.
func NewSavingsAccount(id, holderName string, balance decimal.Decimal) (*Account, error) {
	return newAccount(id, holderName, KindSavings, balance, policyFor(KindSavings, decimal.Zero))
}

// NewCheckingAccount creates a checking account.
func NewCheckingAccount(id, holderName string, balance decimal.Decimal) (*Account, error) {
	return newAccount(id, holderName, KindChecking, balance, policyFor(KindChecking, decimal.Zero))
}

// NewCreditAccount creates a credit account compounding at its own rate.
func NewCreditAccount(id, holderName string, balance, rate decimal.Decimal) (*Account, error) {
	if err := ValidateRate(rate); err != nil {
		return nil, err
	}
	return newAccount(id, holderName, KindCredit, balance, policyFor(KindCredit, rate))
}

// NewJointAccount creates an account shared by holders. Its holder name is
// always JointHolderName.
func NewJointAccount(id string, holders []string, balance decimal.Decimal) (*Account, error) {
	if err := ValidateHolders(holders); err != nil {
		return nil, err
	}

	a, err := newAccount(id, JointHolderName, KindJoint, balance, policyFor(KindJoint, decimal.Zero))
	if err != nil {
		return nil, err
	}

	a.holders = make([]string, len(holders))
	for i, h := range holders {
		a.holders[i] = strings.TrimSpace(h)
	}

	return a, nil
}

// ID returns the account identifier.
func (a *Account) ID() string { return a.id }

// HolderName returns the display name of the account holder.
func (a *Account) HolderName() string { return a.holderName }

// Kind returns the account kind.
func (a *Account) Kind() AccountKind { return a.kind }

// CreatedAt returns the construction time.
func (a *Account) CreatedAt() time.Time { return a.createdAt }

// Holders returns a copy of the joint account participants, nil for other kinds.
func (a *Account) Holders() []string {
	if a.holders == nil {
		return nil
	}
	out := make([]string, len(a.holders))
	copy(out, a.holders)
	return out
}

// OpeningBalance returns the balance the account was created with.
func (a *Account) OpeningBalance() decimal.Decimal { return a.opening }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// History returns a copy of the transaction history in insertion order.
func (a *Account) History() []Record {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Record, len(a.history))
	copy(out, a.history)
	return out
}

// HistoryLines returns the transaction history as audit log strings.
func (a *Account) HistoryLines() []string {
	return FormatHistory(a.History())
}

// Snapshot returns balance and history read under a single lock.
func (a *Account) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

// SnapshotAll snapshots every account while holding all of their locks, so no
// transfer between two of them is seen half applied. Locks are taken in
// ascending id order, the order Transfer uses. Ids must be unique. Results
// follow the order of accounts; nil entries are skipped and repeated
// pointers are locked once.
func SnapshotAll(accounts []*Account) []Snapshot {
	input := make([]*Account, 0, len(accounts))
	ordered := make([]*Account, 0, len(accounts))
	seen := make(map[*Account]bool, len(accounts))
	for _, a := range accounts {
		if a == nil {
			continue
		}
		input = append(input, a)
		if !seen[a] {
			seen[a] = true
			ordered = append(ordered, a)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].id < ordered[j].id })

	for _, a := range ordered {
		a.mu.Lock()
	}
	defer func() {
		for i := len(ordered) - 1; i >= 0; i-- {
			ordered[i].mu.Unlock()
		}
	}()

	snaps := make([]Snapshot, len(input))
	for i, a := range input {
		snaps[i] = a.snapshotLocked()
	}

	return snaps
}

func (a *Account) snapshotLocked() Snapshot {
	history := make([]Record, len(a.history))
	copy(history, a.history)

	return Snapshot{
		CreatedAt:      a.createdAt,
		ID:             a.id,
		HolderName:     a.holderName,
		Kind:           a.kind,
		Holders:        a.Holders(),
		InterestRate:   a.policy.rate,
		OpeningBalance: a.opening,
		Balance:        a.balance,
		History:        history,
	}
}

// Deposit adds amount to the balance.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.applyCredit(amount, now())

	return nil
}

// Withdraw removes amount from the balance. It fails with ErrInsufficientFunds
// when amount exceeds the balance, leaving the account untouched.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.checkDebit(amount); err != nil {
		return err
	}
	a.applyDebit(amount, now())

	return nil
}

// Transfer moves amount from a to recipient. Each side gets the plain
// withdrawal/deposit record followed by a transfer record naming the other
// account; a joint sender gets one more joint_transfer record. Both accounts
// are locked in ascending id order for the whole operation.
func (a *Account) Transfer(recipient *Account, amount decimal.Decimal) error {
	if err := ValidateAmount(amount); err != nil {
		return err
	}

	if recipient == nil {
		return ErrNilAccount
	}

	if recipient == a || recipient.id == a.id {
		return ErrSameAccount
	}

	unlock := lockPair(a, recipient)
	defer unlock()

	if err := a.checkDebit(amount); err != nil {
		return err
	}

	at := now()
	a.applyDebit(amount, at)
	recipient.applyCredit(amount, at)
	a.appendRecord(RecordTransferOut, amount, recipient.id, at)
	recipient.appendRecord(RecordTransferIn, amount, a.id, at)

	if a.kind == KindJoint {
		a.appendRecord(RecordJointTransfer, amount, recipient.id, at)
	}

	return nil
}

// InterestRate returns the nominal annual interest rate.
func (a *Account) InterestRate() decimal.Decimal {
	return a.policy.rate
}

// CalculateInterest reports the interest one year of compounding would yield
// on the current balance. It never changes the account.
func (a *Account) CalculateInterest(periods int) (decimal.Decimal, error) {
	return a.InterestOn(a.Balance(), periods)
}

// InterestOn applies the account's interest policy to balance.
func (a *Account) InterestOn(balance decimal.Decimal, periods int) (decimal.Decimal, error) {
	if err := ValidateCompounding(periods); err != nil {
		return decimal.Zero, err
	}
	return a.policy.accrue(balance, periods), nil
}

// checkDebit checks if the account can be debited by amount. Caller holds mu.
func (a *Account) checkDebit(amount decimal.Decimal) error {
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	return nil
}

func (a *Account) applyDebit(amount decimal.Decimal, at time.Time) {
	a.balance = a.balance.Sub(amount)
	a.appendRecord(RecordWithdrawal, amount, "", at)
}

func (a *Account) applyCredit(amount decimal.Decimal, at time.Time) {
	a.balance = a.balance.Add(amount)
	a.appendRecord(RecordDeposit, amount, "", at)
}

func (a *Account) appendRecord(kind RecordKind, amount decimal.Decimal, counterparty string, at time.Time) {
	a.history = append(a.history, Record{
		CreatedAt:      at,
		Kind:           kind,
		CounterpartyID: counterparty,
		Amount:         amount,
		BalanceAfter:   a.balance,
		Seq:            len(a.history) + 1,
	})
}

// lockPair locks both accounts in ascending id order and returns the unlock.
func lockPair(a, b *Account) func() {
	first, second := a, b
	if b.id < a.id {
		first, second = b, a
	}

	first.mu.Lock()
	second.mu.Lock()

	return func() {
		second.mu.Unlock()
		first.mu.Unlock()
	}
}
