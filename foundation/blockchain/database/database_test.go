package database_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/database"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/genesis"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/storage/memory"
	"github.com/shopspring/decimal"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

var now = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func noopEv(v string, args ...any) {}

func tx(sender, recipient string, amount string) database.Tx {
	return database.Tx{
		Sender:    database.AccountID(sender),
		Recipient: database.AccountID(recipient),
		Amount:    decimal.RequireFromString(amount),
		TimeStamp: uint64(now.UnixMilli()),
	}
}

// =============================================================================

func TestBlockHash(t *testing.T) {
	t.Log("Given the need to hash block content deterministically.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen handling a block.", testID)
		{
			trans := []database.Tx{tx("alice", "bob", "4")}
			b1 := database.NewBlock(1, 100, trans, "prev", 0)
			b2 := database.NewBlock(1, 100, trans, "prev", 0)

			if b1.Hash != b2.Hash {
				t.Fatalf("\t%s\tTest %d:\tShould get the same hash for the same content: %s != %s", failed, testID, b1.Hash, b2.Hash)
			}
			t.Logf("\t%s\tTest %d:\tShould get the same hash for the same content.", success, testID)

			if len(b1.Hash) != 64 {
				t.Fatalf("\t%s\tTest %d:\tShould get a 64 character hash: got %d", failed, testID, len(b1.Hash))
			}
			t.Logf("\t%s\tTest %d:\tShould get a 64 character hash.", success, testID)

			if b1.ComputeHash() != b1.Hash {
				t.Fatalf("\t%s\tTest %d:\tShould recompute the stored hash.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould recompute the stored hash.", success, testID)

			b3 := database.NewBlock(1, 100, []database.Tx{tx("alice", "bob", "4.00")}, "prev", 0)
			if b1.Hash != b3.Hash {
				t.Fatalf("\t%s\tTest %d:\tShould hash equal amounts the same: %s != %s", failed, testID, b1.Hash, b3.Hash)
			}
			t.Logf("\t%s\tTest %d:\tShould hash equal amounts the same.", success, testID)

			b4 := database.NewBlock(1, 100, trans, "prev", 1)
			if b1.Hash == b4.Hash {
				t.Fatalf("\t%s\tTest %d:\tShould change the hash when the nonce changes.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould change the hash when the nonce changes.", success, testID)

			g1 := database.NewBlock(0, 100, nil, database.ZeroHash, 0)
			g2 := database.NewBlock(0, 100, []database.Tx{}, database.ZeroHash, 0)
			if g1.Hash != g2.Hash {
				t.Fatalf("\t%s\tTest %d:\tShould hash nil and empty transactions the same.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould hash nil and empty transactions the same.", success, testID)

			trans[0].Recipient = "mallory"
			if b1.ComputeHash() != b1.Hash {
				t.Fatalf("\t%s\tTest %d:\tShould not be affected by changes to the caller's transactions.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould not be affected by changes to the caller's transactions.", success, testID)
		}
	}
}

func TestPOW(t *testing.T) {
	type table struct {
		name       string
		difficulty uint
		trans      []database.Tx
	}

	tt := []table{
		{name: "difficulty1", difficulty: 1, trans: []database.Tx{tx("alice", "bob", "4")}},
		{name: "difficulty3", difficulty: 3, trans: []database.Tx{tx("alice", "bob", "4"), tx("MINER", "miner1", "10")}},
	}

	t.Log("Given the need to seal blocks with proof of work.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling difficulty %d.", testID, tst.difficulty)
			{
				f := func(t *testing.T) {
					prev := database.NewGenesisBlock(now)

					block, err := database.POW(context.Background(), tst.difficulty, prev, tst.trans, now, noopEv)
					if err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould be able to seal the block: %v", failed, testID, err)
					}
					t.Logf("\t%s\tTest %d:\tShould be able to seal the block.", success, testID)

					if !strings.HasPrefix(block.Hash, strings.Repeat("0", int(tst.difficulty))) {
						t.Fatalf("\t%s\tTest %d:\tShould have %d leading zeros: %s", failed, testID, tst.difficulty, block.Hash)
					}
					t.Logf("\t%s\tTest %d:\tShould have %d leading zeros.", success, testID, tst.difficulty)

					if block.ComputeHash() != block.Hash {
						t.Fatalf("\t%s\tTest %d:\tShould recompute the sealed hash.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould recompute the sealed hash.", success, testID)

					if block.Index != 1 || block.PrevHash != prev.Hash {
						t.Fatalf("\t%s\tTest %d:\tShould link to the previous block: idx %d prev %s", failed, testID, block.Index, block.PrevHash)
					}
					t.Logf("\t%s\tTest %d:\tShould link to the previous block.", success, testID)

					// The search walks up from zero, so no smaller nonce can solve it.
					for nonce := uint64(0); nonce < block.Nonce; nonce++ {
						b := database.NewBlock(block.Index, block.TimeStamp, block.Transactions, block.PrevHash, nonce)
						if strings.HasPrefix(b.Hash, strings.Repeat("0", int(tst.difficulty))) {
							t.Fatalf("\t%s\tTest %d:\tShould find the first solving nonce: %d also solves", failed, testID, nonce)
						}
					}
					t.Logf("\t%s\tTest %d:\tShould find the first solving nonce.", success, testID)

					if err := block.ValidateBlock(prev, tst.difficulty, noopEv); err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould validate the block: %v", failed, testID, err)
					}
					t.Logf("\t%s\tTest %d:\tShould validate the block.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}
}

func TestSealCancel(t *testing.T) {
	t.Log("Given the need to stop sealing when asked.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen the context is cancelled.", testID)
		{
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			block := database.NewBlock(1, 100, nil, "prev", 0)
			err := block.Seal(ctx, 64, noopEv)
			if !errors.Is(err, context.Canceled) {
				t.Fatalf("\t%s\tTest %d:\tShould get a cancelled error: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould get a cancelled error.", success, testID)
		}
	}
}

func TestValidateBlock(t *testing.T) {
	const difficulty = 1

	prev := database.NewGenesisBlock(now)
	good, err := database.POW(context.Background(), difficulty, prev, []database.Tx{tx("alice", "bob", "4")}, now, noopEv)
	if err != nil {
		t.Fatalf("unable to seal block: %v", err)
	}

	type table struct {
		name   string
		mutate func(b *database.Block)
	}

	tt := []table{
		{name: "amount", mutate: func(b *database.Block) { b.Transactions[0].Amount = decimal.NewFromInt(400) }},
		{name: "index", mutate: func(b *database.Block) { b.Index = 2 }},
		{name: "prevhash", mutate: func(b *database.Block) { b.PrevHash = "abc"; b.Hash = b.ComputeHash() }},
		{name: "unsolved", mutate: func(b *database.Block) { b.Nonce++; b.Hash = b.ComputeHash() }},
	}

	t.Log("Given the need to detect tampered blocks.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen the %s is changed.", testID, tst.name)
			{
				f := func(t *testing.T) {
					b := database.ToBlock(database.NewBlockData(good))
					tst.mutate(&b)

					if b.ValidateBlock(prev, difficulty, noopEv) == nil {
						t.Fatalf("\t%s\tTest %d:\tShould reject the block.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould reject the block.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}
}

func TestParseAmount(t *testing.T) {
	type table struct {
		input string
		exp   string
		err   bool
	}

	tt := []table{
		{input: "4", exp: "4"},
		{input: "4.0", exp: "4"},
		{input: " 0.25 ", exp: "0.25"},
		{input: "0", exp: "0"},
		{input: "-1", err: true},
		{input: "abc", err: true},
		{input: "", err: true},
		{input: "1e-18", exp: "0.000000000000000001"},
		{input: "1e18", exp: "1000000000000000000"},
		{input: "1e-19", err: true},
		{input: "1e19", err: true},
		{input: "1e-999999999", err: true},
		{input: "1" + strings.Repeat("0", 40), err: true},
	}

	t.Log("Given the need to parse amounts.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen parsing %q.", testID, tst.input)
			{
				amount, err := database.ParseAmount(tst.input)
				switch tst.err {
				case true:
					if !errors.Is(err, database.ErrInvalidAmount) {
						t.Fatalf("\t%s\tTest %d:\tShould get an invalid amount error: %v", failed, testID, err)
					}
					t.Logf("\t%s\tTest %d:\tShould get an invalid amount error.", success, testID)

				default:
					if err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould parse the amount: %v", failed, testID, err)
					}
					if amount.String() != tst.exp {
						t.Fatalf("\t%s\tTest %d:\tShould get %s: got %s", failed, testID, tst.exp, amount)
					}
					t.Logf("\t%s\tTest %d:\tShould parse the amount.", success, testID)
				}
			}
		}
	}
}

func TestNewTx(t *testing.T) {
	type table struct {
		name      string
		sender    string
		recipient string
		amount    decimal.Decimal
		err       error
	}

	tt := []table{
		{name: "valid", sender: "alice", recipient: "bob", amount: decimal.NewFromInt(4)},
		{name: "unicode", sender: "zoë", recipient: "bøb", amount: decimal.NewFromInt(4)},
		{name: "zero", sender: "alice", recipient: "bob", amount: decimal.Zero},
		{name: "emptysender", sender: "", recipient: "bob", amount: decimal.NewFromInt(1), err: database.ErrInvalidAccount},
		{name: "badrecipient", sender: "alice", recipient: "\xff", amount: decimal.NewFromInt(1), err: database.ErrInvalidAccount},
		{name: "badsender", sender: "\xfe", recipient: "bob", amount: decimal.NewFromInt(1), err: database.ErrInvalidAccount},
		{name: "negative", sender: "alice", recipient: "bob", amount: decimal.NewFromInt(-1), err: database.ErrInvalidAmount},
		{name: "tinyexponent", sender: "alice", recipient: "bob", amount: decimal.New(1, -2000000), err: database.ErrInvalidAmount},
		{name: "hugeexponent", sender: "alice", recipient: "bob", amount: decimal.New(1, 2000000), err: database.ErrInvalidAmount},
	}

	t.Log("Given the need to construct transactions.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen the transaction is %s.", testID, tst.name)
			{
				f := func(t *testing.T) {
					_, err := database.NewTx(database.AccountID(tst.sender), database.AccountID(tst.recipient), tst.amount, now)
					if tst.err != nil {
						if !errors.Is(err, tst.err) {
							t.Fatalf("\t%s\tTest %d:\tShould get %q: %v", failed, testID, tst.err, err)
						}
						t.Logf("\t%s\tTest %d:\tShould get %q.", success, testID, tst.err)
						return
					}

					if err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould construct the transaction: %v", failed, testID, err)
					}
					t.Logf("\t%s\tTest %d:\tShould construct the transaction.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}
}

func TestToAccountID(t *testing.T) {
	t.Log("Given the need to validate identities.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen the identity is not valid UTF-8.", testID)
		{
			for _, s := range []string{"", "\xff", "a\xfeb"} {
				if _, err := database.ToAccountID(s); !errors.Is(err, database.ErrInvalidAccount) {
					t.Fatalf("\t%s\tTest %d:\tShould reject %q: %v", failed, testID, s, err)
				}
			}
			t.Logf("\t%s\tTest %d:\tShould reject the identity.", success, testID)
		}

		testID = 1
		t.Logf("\tTest %d:\tWhen the identity is valid.", testID)
		{
			accountID, err := database.ToAccountID("bøb")
			if err != nil || accountID != "bøb" {
				t.Fatalf("\t%s\tTest %d:\tShould accept the identity: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould accept the identity.", success, testID)
		}
	}
}

func TestReplay(t *testing.T) {
	gen := genesis.Default()
	gen.Difficulty = 1
	gen.Balances = map[string]decimal.Decimal{"founder": decimal.NewFromInt(100)}

	genesisBlock := database.NewGenesisBlock(now)
	b1, err := database.POW(context.Background(), gen.Difficulty, genesisBlock, []database.Tx{
		tx("alice", "bob", "4"),
		tx("founder", "bob", "50"),
		tx("MINER", "miner1", "10"),
	}, now, noopEv)
	if err != nil {
		t.Fatalf("unable to seal block: %v", err)
	}
	b2, err := database.POW(context.Background(), gen.Difficulty, b1, []database.Tx{
		tx("bob", "alice", "1.5"),
		tx("MINER", "miner1", "10"),
	}, now, noopEv)
	if err != nil {
		t.Fatalf("unable to seal block: %v", err)
	}

	strg := memory.New()
	strg.WriteBlocks([]database.BlockData{database.NewBlockData(genesisBlock), database.NewBlockData(b1), database.NewBlockData(b2)})
	strg.WriteAccounts([]database.Account{{AccountID: "alice", Grant: decimal.NewFromInt(10)}})

	final := map[database.AccountID]string{
		"founder": "50",
		"alice":   "7.5",
		"bob":     "52.5",
		"miner1":  "20",
	}

	t.Log("Given the need to rebuild balances from storage.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen loading a stored chain.", testID)
		{
			db, err := database.New(gen, strg, now, noopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to open database: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to open database.", success, testID)

			if n := len(db.CopyBlocks()); n != 3 {
				t.Fatalf("\t%s\tTest %d:\tShould have 3 blocks: got %d", failed, testID, n)
			}
			t.Logf("\t%s\tTest %d:\tShould have 3 blocks.", success, testID)

			balances := db.CopyBalances()
			for account, info := range balances {
				finalValue, exists := final[account]
				if !exists {
					t.Errorf("\t%s\tTest %d:\tShould have account %s in balances.", failed, testID, account)
					continue
				}
				t.Logf("\t%s\tTest %d:\tShould have account %s in balances.", success, testID, account)

				if finalValue != info.String() {
					t.Errorf("\t%s\tTest %d:\tShould have correct balances for %s.", failed, testID, account)
					t.Logf("\t%s\tTest %d:\tgot: %s", failed, testID, info)
					t.Logf("\t%s\tTest %d:\texp: %s", failed, testID, finalValue)
				} else {
					t.Logf("\t%s\tTest %d:\tShould have correct balances for %s.", success, testID, account)
				}
			}

			// Founder 100 + grant 10 + two rewards 20.
			if total := balances.Total().String(); total != "130" {
				t.Fatalf("\t%s\tTest %d:\tShould conserve minted value: got %s", failed, testID, total)
			}
			t.Logf("\t%s\tTest %d:\tShould conserve minted value.", success, testID)

			if db.Balance("nobody").String() != "0" {
				t.Fatalf("\t%s\tTest %d:\tShould get zero for an unknown account.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould get zero for an unknown account.", success, testID)
		}

		testID = 1
		t.Logf("\tTest %d:\tWhen a stored block was changed.", testID)
		{
			blocks, _ := strg.ReadBlocks()
			blocks[1].Transactions[0].Amount = decimal.NewFromInt(4000)
			tampered := memory.New()
			tampered.WriteBlocks(blocks)

			if _, err := database.New(gen, tampered, now, noopEv); err == nil {
				t.Fatalf("\t%s\tTest %d:\tShould refuse to open a tampered chain.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould refuse to open a tampered chain.", success, testID)
		}

		testID = 2
		t.Logf("\tTest %d:\tWhen storage is empty.", testID)
		{
			db, err := database.New(gen, memory.New(), now, noopEv)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to open database: %v", failed, testID, err)
			}

			blocks := db.CopyBlocks()
			if len(blocks) != 1 || blocks[0].Index != 0 || blocks[0].PrevHash != database.ZeroHash || len(blocks[0].Transactions) != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould create a genesis block: %+v", failed, testID, blocks)
			}
			t.Logf("\t%s\tTest %d:\tShould create a genesis block.", success, testID)

			if db.Balance("founder").String() != "100" {
				t.Fatalf("\t%s\tTest %d:\tShould apply genesis balances: got %s", failed, testID, db.Balance("founder"))
			}
			t.Logf("\t%s\tTest %d:\tShould apply genesis balances.", success, testID)
		}
	}
}
