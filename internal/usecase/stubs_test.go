package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/gobank/internal/domain"
)

type stubAccountRepository struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
	order    []string

	// listErr is returned from the failListFrom-th List call on (every call
	// when failListFrom is zero).
	listErr      error
	failListFrom int
	listCalls    int
}

func newStubAccountRepository(accounts ...*domain.Account) *stubAccountRepository {
	s := &stubAccountRepository{accounts: make(map[string]*domain.Account)}
	for _, a := range accounts {
		_ = s.Create(context.Background(), a)
	}
	return s
}

func (s *stubAccountRepository) Create(_ context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.ID()]; ok {
		return domain.ErrAccountExists
	}
	s.accounts[account.ID()] = account
	s.order = append(s.order, account.ID())
	return nil
}

func (s *stubAccountRepository) GetByID(_ context.Context, id string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return a, nil
}

func (s *stubAccountRepository) List(context.Context) ([]*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	if s.listErr != nil && s.listCalls >= s.failListFrom {
		return nil, s.listErr
	}
	out := make([]*domain.Account, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.accounts[id])
	}
	return out, nil
}

type seqIDGenerator struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("op-%d", g.n)
}

type nopMetrics struct{}

func (nopMetrics) AccountOpened(domain.AccountKind)                           {}
func (nopMetrics) OperationCompleted(string, error)                           {}
func (nopMetrics) TransferCompleted(decimal.Decimal)                          {}
func (nopMetrics) BalanceChanged(string, domain.AccountKind, decimal.Decimal) {}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func savings(t *testing.T, id, balance string) *domain.Account {
	t.Helper()
	a, err := domain.NewSavingsAccount(id, "Holder "+id, dec(balance))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return a
}

func joint(t *testing.T, id, balance string) *domain.Account {
	t.Helper()
	a, err := domain.NewJointAccount(id, []string{"Ann", "Ben"}, dec(balance))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return a
}
