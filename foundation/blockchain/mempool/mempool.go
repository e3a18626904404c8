// Package mempool maintains the pool of transactions that have been admitted
// to the ledger but not yet sealed into a block.
package mempool

import (
	"sync"

	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/database"
)

// Mempool represents an ordered cache of transactions. Insertion order is the
// settlement order used when the transactions are sealed into a block.
type Mempool struct {
	pool []database.Tx
	mu   sync.RWMutex
}

// New constructs a new, empty mempool.
func New() *Mempool {
	return &Mempool{}
}

// Count returns the current number of transaction in the pool.
func (mp *Mempool) Count() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	return len(mp.pool)
}

// Add appends a transaction to the end of the pool and returns the new count.
func (mp *Mempool) Add(tx database.Tx) int {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = append(mp.pool, tx)

	return len(mp.pool)
}

// Truncate clears all the transactions from the pool.
func (mp *Mempool) Truncate() {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = nil
}

// PickAll returns a copy of every transaction in the pool in the order they
// were added.
func (mp *Mempool) PickAll() []database.Tx {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	trans := make([]database.Tx, len(mp.pool))
	copy(trans, mp.pool)

	return trans
}
