package state

import (
	"context"
	"fmt"

	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/database"
)

// MineNewBlock seals every pending transaction plus a reward for the miner
// into a new block and appends it to the chain. The block is sealed before
// any state changes, so a cancelled context leaves the ledger untouched.
//
// If the chain can't be written to storage the block is still returned, along
// with an error wrapping ErrPersistence. The ledger in memory stays ahead of
// storage until the next successful write.
func (s *State) MineNewBlock(ctx context.Context, miner database.AccountID) (database.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evHandler("state: MineNewBlock: MINING: check mempool count")

	// Are there any transactions in the pool.
	if s.mempool.Count() == 0 {
		return database.Block{}, ErrNothingToMine
	}

	now := s.now()

	reward, err := database.NewTx(database.MinerAccountID, miner, s.genesis.MiningReward, now)
	if err != nil {
		return database.Block{}, err
	}
	trans := append(s.mempool.PickAll(), reward)

	s.evHandler("state: MineNewBlock: MINING: perform POW")

	// Attempt to create a new block by solving the POW puzzle. This can be cancelled.
	block, err := database.POW(ctx, s.genesis.Difficulty, s.db.LatestBlock(), trans, now, s.evHandler)
	if err != nil {
		return database.Block{}, err
	}

	s.evHandler("state: MineNewBlock: MINING: update local state")

	if err := s.db.Append(block, s.evHandler); err != nil {
		return database.Block{}, err
	}
	s.db.ApplyTransaction(reward)
	s.mempool.Truncate()

	s.evHandler("state: MineNewBlock: MINING: write to storage")

	if err := s.persist(); err != nil {
		s.evHandler("state: MineNewBlock: WARNING: %s", err)
		return block, err
	}

	return block, nil
}

// =============================================================================

// Persist writes the whole chain and the created accounts to storage,
// replacing what was stored before.
func (s *State) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persist()
}

// persist performs the write. The caller must hold the lock.
func (s *State) persist() error {
	if err := s.db.Write(); err != nil {
		return fmt.Errorf("%w: writing blocks: %w", ErrPersistence, err)
	}

	if err := s.db.WriteAccounts(); err != nil {
		return fmt.Errorf("%w: writing accounts: %w", ErrPersistence, err)
	}

	return nil
}
