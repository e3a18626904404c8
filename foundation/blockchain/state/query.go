package state

import (
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/database"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/genesis"
	"github.com/shopspring/decimal"
)

// HistoryTx is a transaction that has been mined along with the index of the
// block holding it.
type HistoryTx struct {
	database.Tx
	Block uint64 `json:"block"`
}

// =============================================================================

// RetrieveGenesis returns a copy of the genesis information.
func (s *State) RetrieveGenesis() genesis.Genesis {
	return s.genesis
}

// RetrieveChain returns a copy of the chain starting with genesis.
func (s *State) RetrieveChain() []database.Block {
	return s.db.CopyBlocks()
}

// RetrieveLatestBlock returns a copy the current latest block.
func (s *State) RetrieveLatestBlock() database.Block {
	return s.db.LatestBlock()
}

// RetrieveMempool returns a copy of the pending transactions in the order
// they were admitted.
func (s *State) RetrieveMempool() []database.Tx {
	return s.mempool.PickAll()
}

// RetrieveBalances returns a copy of every known balance.
func (s *State) RetrieveBalances() database.Balances {
	return s.db.CopyBalances()
}

// =============================================================================

// QueryBalance returns the balance for the account, zero when the account is
// unknown.
func (s *State) QueryBalance(accountID database.AccountID) decimal.Decimal {
	return s.db.Balance(accountID)
}

// QueryHistory returns every mined transaction in chain order. If the account
// is not empty, only transactions sent or received by the account are
// returned.
func (s *State) QueryHistory(accountID database.AccountID) []HistoryTx {
	var out []HistoryTx

	for _, block := range s.db.CopyBlocks() {
		for _, tx := range block.Transactions {
			if accountID == "" || tx.Sender == accountID || tx.Recipient == accountID {
				out = append(out, HistoryTx{Tx: tx, Block: block.Index})
			}
		}
	}

	return out
}
