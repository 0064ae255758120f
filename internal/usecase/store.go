package usecase

import "gic-bank/internal/domain"

// accountStore maps account ids to their ledgers. Accounts are created
// lazily on first deposit and are never deleted; transactions are only ever
// appended by the transaction processor.
type accountStore struct {
	accounts map[string]*domain.Account
}

func newAccountStore() accountStore {
	return accountStore{accounts: make(map[string]*domain.Account)}
}

// getOrNone returns the account for id, or nil if it does not exist.
func (s accountStore) getOrNone(id string) *domain.Account {
	return s.accounts[id]
}

// create registers an empty account for id and returns it.
func (s accountStore) create(id string) *domain.Account {
	account := &domain.Account{ID: id}
	s.accounts[id] = account
	return account
}
