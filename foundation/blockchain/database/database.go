// Package database handles all the lower level support for maintaining the
// blockchain in storage and maintaining an in memory database of account
// balances derived from it.
package database

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/genesis"
	"github.com/shopspring/decimal"
)

// Database manages the chain of blocks and the balances of the accounts who
// have transacted on the blockchain.
type Database struct {
	mu sync.RWMutex

	genesis  genesis.Genesis
	blocks   []Block
	accounts []Account
	balances Balances

	storage Storage
}

// New constructs a new database by reading the chain and accounts from
// storage and replaying every transaction to rebuild the balances. When
// storage holds no chain, a genesis block is created in memory instead.
func New(genesis genesis.Genesis, storage Storage, now time.Time, evHandler func(v string, args ...any)) (*Database, error) {
	db := Database{
		genesis:  genesis,
		balances: make(Balances),
		storage:  storage,
	}

	// Read the accounts that were granted a starting balance.
	accounts, err := storage.ReadAccounts()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("reading accounts: %w", err)
	}
	db.accounts = accounts

	// Read all the blocks from storage.
	blocksData, err := storage.ReadBlocks()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("reading blocks: %w", err)
	}

	if len(blocksData) == 0 {
		evHandler("database: New: no chain in storage, creating genesis block")
		db.blocks = []Block{NewGenesisBlock(now)}
		db.replay(evHandler)
		return &db, nil
	}

	// Convert and validate every block against its parent.
	blocks := make([]Block, len(blocksData))
	for i, blockData := range blocksData {
		block := ToBlock(blockData)

		switch i {
		case 0:
			if err := block.validateGenesis(); err != nil {
				return nil, err
			}

		default:
			if err := block.ValidateBlock(blocks[i-1], genesis.Difficulty, evHandler); err != nil {
				return nil, err
			}
		}

		blocks[i] = block
	}
	db.blocks = blocks

	db.replay(evHandler)

	return &db, nil
}

// replay rebuilds the balances from scratch using the genesis balances, the
// account grants, and then every transaction in block order.
func (db *Database) replay(evHandler func(v string, args ...any)) {
	db.balances = make(Balances)

	for accountStr, balance := range db.genesis.Balances {
		db.balances.Credit(AccountID(accountStr), balance)
	}

	for _, account := range db.accounts {
		db.balances.Credit(account.AccountID, account.Grant)
	}

	for _, block := range db.blocks {
		for _, tx := range block.Transactions {
			db.balances.apply(tx)
		}
	}

	for accountID, bal := range db.balances {
		if bal.IsNegative() {
			evHandler("database: replay: WARNING: account[%s] has negative balance[%s]", accountID, bal)
		}
	}
}

// Close closes the underlying storage.
func (db *Database) Close() error {
	return db.storage.Close()
}

// =============================================================================

// Balance returns the balance for the account, zero when the account is unknown.
func (db *Database) Balance(accountID AccountID) decimal.Decimal {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.balances.Get(accountID)
}

// CopyBalances makes a copy of the current balances in the database.
func (db *Database) CopyBalances() Balances {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.balances.Copy()
}

// ApplyTransaction performs the business logic for applying a transaction
// to the balances. The sender is debited unless it's the reward issuer and
// the recipient is always credited. No balance checks are performed here.
func (db *Database) ApplyTransaction(tx Tx) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.balances.apply(tx)
}

// ApplyGrant records a new account and credits it with its starting grant.
func (db *Database) ApplyGrant(account Account) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.accounts = append(db.accounts, account)
	db.balances.Credit(account.AccountID, account.Grant)
}

// CopyAccounts makes a copy of the accounts created by the ledger.
func (db *Database) CopyAccounts() []Account {
	db.mu.RLock()
	defer db.mu.RUnlock()

	accounts := make([]Account, len(db.accounts))
	copy(accounts, db.accounts)

	return accounts
}

// =============================================================================

// LatestBlock returns the latest block.
func (db *Database) LatestBlock() Block {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.blocks[len(db.blocks)-1]
}

// CopyBlocks makes a copy of the chain in order, starting with genesis.
func (db *Database) CopyBlocks() []Block {
	db.mu.RLock()
	defer db.mu.RUnlock()

	blocks := make([]Block, len(db.blocks))
	copy(blocks, db.blocks)

	return blocks
}

// Append adds a sealed block to the end of the chain after validating it
// follows the latest block.
func (db *Database) Append(block Block, evHandler func(v string, args ...any)) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if err := block.ValidateBlock(db.blocks[len(db.blocks)-1], db.genesis.Difficulty, evHandler); err != nil {
		return err
	}

	db.blocks = append(db.blocks, block)

	return nil
}

// Write replaces the chain in storage with the chain in memory.
func (db *Database) Write() error {
	db.mu.RLock()
	blocksData := make([]BlockData, len(db.blocks))
	for i, block := range db.blocks {
		blocksData[i] = NewBlockData(block)
	}
	db.mu.RUnlock()

	return db.storage.WriteBlocks(blocksData)
}

// WriteAccounts replaces the accounts in storage with the accounts in memory.
func (db *Database) WriteAccounts() error {
	return db.storage.WriteAccounts(db.CopyAccounts())
}

// =============================================================================

// apply performs the debit and credit for the transaction.
func (b Balances) apply(tx Tx) {
	if !tx.IsReward() {
		b.Debit(tx.Sender, tx.Amount)
	}
	b.Credit(tx.Recipient, tx.Amount)
}
