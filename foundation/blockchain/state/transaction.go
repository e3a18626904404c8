package state

import (
	"fmt"

	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/database"
	"github.com/shopspring/decimal"
)

// SubmitTransaction accepts a transaction for inclusion in the next block.
// The sender is debited and the recipient credited immediately, so balances
// reflect pending transactions before they are mined.
func (s *State) SubmitTransaction(sender database.AccountID, recipient database.AccountID, amount decimal.Decimal) (database.Tx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.admit(sender, recipient, amount)
}

// admit performs the admission rules. The caller must hold the lock.
func (s *State) admit(sender database.AccountID, recipient database.AccountID, amount decimal.Decimal) (database.Tx, error) {
	tx, err := database.NewTx(sender, recipient, amount, s.now())
	if err != nil {
		return database.Tx{}, err
	}

	if !tx.IsReward() {
		if bal := s.db.Balance(sender); bal.LessThan(amount) {
			return database.Tx{}, fmt.Errorf("%w: account[%s] balance[%s] amount[%s]", ErrInsufficientFunds, sender, bal, amount)
		}
	}

	s.evHandler("state: admit: tx[%s]", tx)

	n := s.mempool.Add(tx)
	s.db.ApplyTransaction(tx)

	s.evHandler("state: admit: mempool count[%d]", n)

	return tx, nil
}
