// Package memory implements the ability to read and write the blockchain
// snapshot to memory.
package memory

import (
	"sync"

	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/database"
)

// Memory represents the serialization implementation for reading and storing
// the chain and accounts in memory. This implements the database.Storage
// interface.
type Memory struct {
	mu       sync.RWMutex
	blocks   []database.BlockData
	accounts []database.Account
}

// New constructs an Memory value for use.
func New() *Memory {
	return &Memory{}
}

// Close in this implementation has nothing to do since everything
// is in memory.
func (m *Memory) Close() error {
	return nil
}

// ReadBlocks returns a copy of the chain held in memory.
func (m *Memory) ReadBlocks() ([]database.BlockData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.blocks == nil {
		return nil, database.ErrNotFound
	}

	blocks := make([]database.BlockData, len(m.blocks))
	for i, blockData := range m.blocks {
		blocks[i] = copyBlockData(blockData)
	}

	return blocks, nil
}

// WriteBlocks replaces the chain held in memory.
func (m *Memory) WriteBlocks(blocks []database.BlockData) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blocks = make([]database.BlockData, len(blocks))
	for i, blockData := range blocks {
		m.blocks[i] = copyBlockData(blockData)
	}

	return nil
}

// ReadAccounts returns a copy of the accounts held in memory.
func (m *Memory) ReadAccounts() ([]database.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.accounts == nil {
		return nil, database.ErrNotFound
	}

	accounts := make([]database.Account, len(m.accounts))
	copy(accounts, m.accounts)

	return accounts, nil
}

// WriteAccounts replaces the accounts held in memory.
func (m *Memory) WriteAccounts(accounts []database.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.accounts = make([]database.Account, len(accounts))
	copy(m.accounts, accounts)

	return nil
}

// =============================================================================

// copyBlockData copies the block so callers can't change what's stored.
func copyBlockData(blockData database.BlockData) database.BlockData {
	trans := make([]database.Tx, len(blockData.Transactions))
	copy(trans, blockData.Transactions)
	blockData.Transactions = trans

	return blockData
}
