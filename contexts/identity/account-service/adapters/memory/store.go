package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"inkwell/contexts/identity/account-service/domain/entities"
	domainerrors "inkwell/contexts/identity/account-service/domain/errors"
)

// Store is the in-memory Repository used by tests and local wiring.
type Store struct {
	mu           sync.RWMutex
	accountsByID map[string]entities.Account
}

func NewStore() *Store {
	return &Store{
		accountsByID: map[string]entities.Account{},
	}
}

func (s *Store) Create(_ context.Context, account entities.Account) (entities.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.accountsByID {
		if strings.EqualFold(existing.Email, account.Email) {
			return entities.Account{}, domainerrors.ErrEmailTaken
		}
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}
	s.accountsByID[account.ID] = account
	return account, nil
}

func (s *Store) GetByID(_ context.Context, id string) (entities.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accountsByID[id]
	if !ok {
		return entities.Account{}, domainerrors.ErrAccountNotFound
	}
	return account, nil
}

func (s *Store) GetByEmail(_ context.Context, email string) (entities.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accountsByID {
		if strings.EqualFold(account.Email, email) {
			return account, nil
		}
	}
	return entities.Account{}, domainerrors.ErrAccountNotFound
}

func (s *Store) List(_ context.Context) ([]entities.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]entities.Account, 0, len(s.accountsByID))
	for _, account := range s.accountsByID {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
	})
	return accounts, nil
}

func (s *Store) Update(_ context.Context, id string, patch entities.AccountPatch) (entities.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accountsByID[id]
	if !ok {
		return entities.Account{}, domainerrors.ErrAccountNotFound
	}
	if patch.Email != nil {
		for otherID, other := range s.accountsByID {
			if otherID != id && strings.EqualFold(other.Email, *patch.Email) {
				return entities.Account{}, domainerrors.ErrEmailTaken
			}
		}
		account.Email = *patch.Email
	}
	if patch.Name != nil {
		account.Name = *patch.Name
	}
	if patch.PasswordHash != nil {
		account.PasswordHash = *patch.PasswordHash
	}
	if patch.Role != nil {
		account.Role = entities.Role(*patch.Role)
	}
	if patch.Status != nil {
		account.Status = entities.Status(*patch.Status)
	}
	s.accountsByID[id] = account
	return account, nil
}

func (s *Store) Delete(_ context.Context, id string) (entities.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accountsByID[id]
	if !ok {
		return entities.Account{}, domainerrors.ErrAccountNotFound
	}
	delete(s.accountsByID, id)
	return account, nil
}
