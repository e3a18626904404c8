package commands_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/saksham0008/CryptoCurrency-Simulation/app/tooling/admin/commands"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/database"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/genesis"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/state"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/storage/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedger(t *testing.T, strg database.Storage) *state.State {
	t.Helper()

	gen := genesis.Default()
	gen.Difficulty = 1
	gen.Balances = map[string]decimal.Decimal{"alice": decimal.NewFromInt(10)}

	st, err := state.New(state.Config{
		Genesis: gen,
		Storage: strg,
		Now:     func() time.Time { return time.Unix(1700000000, 0) },
	})
	require.NoError(t, err)

	return st
}

func TestCommands(t *testing.T) {
	strg := memory.New()
	st := newLedger(t, strg)

	_, err := st.SubmitTransaction("alice", "bob", decimal.NewFromInt(4))
	require.NoError(t, err)
	_, err = st.MineNewBlock(context.Background(), "miner1")
	require.NoError(t, err)

	st = newLedger(t, strg)

	t.Run("balances", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, commands.Balances(&out, st, nil))

		assert.Contains(t, out.String(), "Account: alice  Balance: 6")
		assert.Contains(t, out.String(), "Account: bob  Balance: 4")
		assert.Contains(t, out.String(), "Account: miner1  Balance: 10")

		out.Reset()
		require.NoError(t, commands.Balances(&out, st, []string{"bob"}))
		assert.NotContains(t, out.String(), "alice")
	})

	t.Run("transactions", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, commands.Transactions(&out, st, []string{"miner1"}))

		assert.Contains(t, out.String(), "Block: 1  From: MINER  To: miner1  Amount: 10")
		assert.NotContains(t, out.String(), "From: alice")
	})

	t.Run("verify", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, commands.Verify(&out, st))

		assert.Contains(t, out.String(), "Blocks: 2  Accounts: 3  Total: 20")
		assert.Contains(t, out.String(), "chain verified")
	})
}
