package memory

import (
	"context"
	"sync"

	"github.com/iho/gobank/internal/domain"
)

// AccountRepository implements usecase.AccountRepository in process memory.
// Accounts are held by pointer; the repository only guards the index.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	order    []string
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

// Create registers an account under its id.
func (r *AccountRepository) Create(_ context.Context, account *domain.Account) error {
	if account == nil {
		return domain.ErrNilAccount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.ID()]; ok {
		return domain.ErrAccountExists
	}

	r.accounts[account.ID()] = account
	r.order = append(r.order, account.ID())

	return nil
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(_ context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return account, nil
}

// List returns every account in creation order.
func (r *AccountRepository) List(_ context.Context) ([]*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]*domain.Account, 0, len(r.order))
	for _, id := range r.order {
		accounts = append(accounts, r.accounts[id])
	}

	return accounts, nil
}
