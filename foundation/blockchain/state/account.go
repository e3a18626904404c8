package state

import (
	"fmt"

	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/database"
)

// maxIDAttempts limits how many ids are generated looking for an unused one.
const maxIDAttempts = 10

// CreateAccount generates a new account and credits it with the genesis
// account grant. The grant is written to storage so the balance survives a
// reload. On a persistence failure the account is still returned along with
// an error wrapping ErrPersistence.
func (s *State) CreateAccount() (database.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	balances := s.db.CopyBalances()

	var accountID database.AccountID
	for i := 0; i < maxIDAttempts; i++ {
		id, err := database.ToAccountID(s.newAccountID())
		if err != nil {
			return database.Account{}, err
		}

		if _, exists := balances[id]; !exists && !id.IsMiner() {
			accountID = id
			break
		}
	}

	if accountID == "" {
		return database.Account{}, fmt.Errorf("unable to generate an unused account id after %d attempts", maxIDAttempts)
	}

	account := database.Account{
		AccountID: accountID,
		Grant:     s.genesis.AccountGrant,
		TimeStamp: uint64(s.now().UnixMilli()),
	}

	s.evHandler("state: CreateAccount: account[%s] grant[%s]", account.AccountID, account.Grant)

	s.db.ApplyGrant(account)

	if err := s.db.WriteAccounts(); err != nil {
		return account, fmt.Errorf("%w: writing accounts: %w", ErrPersistence, err)
	}

	return account, nil
}
