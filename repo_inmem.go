package signup

import (
	"context"
	"sync"
)

type accountRepository struct {
	mu       sync.RWMutex
	accounts map[ID]*Account
}

func NewAccountRepository() *accountRepository {
	return &accountRepository{accounts: map[ID]*Account{}}
}

func (repo *accountRepository) Add(_ context.Context, r AddAccountRequest) (*Account, error) {
	acc := &Account{ID: NewID(), Name: r.Name, Email: r.Email, Password: r.Password}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.accounts[acc.ID] = acc

	stored := *acc
	return &stored, nil
}

func (repo *accountRepository) FindByID(id ID) (*Account, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if acc, ok := repo.accounts[id]; ok {
		found := *acc
		return &found, nil
	}
	return nil, ErrNotFound
}

func (repo *accountRepository) Len() int {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return len(repo.accounts)
}
