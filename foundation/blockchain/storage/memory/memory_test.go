package memory_test

import (
	"testing"

	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/database"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/storage/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryIsolation(t *testing.T) {
	m := memory.New()

	_, err := m.ReadBlocks()
	require.ErrorIs(t, err, database.ErrNotFound)

	_, err = m.ReadAccounts()
	require.ErrorIs(t, err, database.ErrNotFound)

	blocks := []database.BlockData{
		{
			Index:    1,
			PrevHash: "abc",
			Transactions: []database.Tx{
				{Sender: "alice", Recipient: "bob", Amount: decimal.NewFromInt(4)},
			},
		},
	}
	require.NoError(t, m.WriteBlocks(blocks))

	blocks[0].Transactions[0].Recipient = "mallory"

	got, err := m.ReadBlocks()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, database.AccountID("bob"), got[0].Transactions[0].Recipient, "writes must be copied")

	got[0].Transactions[0].Recipient = "mallory"

	again, err := m.ReadBlocks()
	require.NoError(t, err)
	assert.Equal(t, database.AccountID("bob"), again[0].Transactions[0].Recipient, "reads must be copied")

	require.NoError(t, m.WriteAccounts([]database.Account{{AccountID: "alice", Grant: decimal.NewFromInt(10)}}))

	accounts, err := m.ReadAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, database.AccountID("alice"), accounts[0].AccountID)
}
