package database

import (
	"context"
	"fmt"
	"time"
)

// Block represents a group of transactions sealed together and linked to the
// block before it.
type Block struct {
	Index        uint64 // Position of the block in the chain, genesis is 0.
	TimeStamp    uint64 // Unix milliseconds the block was mined.
	Transactions []Tx   // Settlement order within the block.
	PrevHash     string // Hash of the previous block in the chain.
	Nonce        uint64 // Value identified to solve the hash solution.
	Hash         string // Content hash of every other field.
}

// NewBlock constructs a block and computes its hash. The transactions are
// copied so later changes to the caller's slice don't alter the block.
func NewBlock(index uint64, timeStamp uint64, trans []Tx, prevHash string, nonce uint64) Block {
	cpy := make([]Tx, len(trans))
	copy(cpy, trans)

	b := Block{
		Index:        index,
		TimeStamp:    timeStamp,
		Transactions: cpy,
		PrevHash:     prevHash,
		Nonce:        nonce,
	}
	b.Hash = b.ComputeHash()

	return b
}

// NewGenesisBlock constructs the first block of a chain. The genesis block
// holds no transactions and is not sealed by proof of work.
func NewGenesisBlock(now time.Time) Block {
	return NewBlock(0, uint64(now.UnixMilli()), nil, ZeroHash, 0)
}

// ComputeHash returns the content hash for the block's current fields. It
// does not modify the block.
func (b Block) ComputeHash() string {

	// The canonical form only holds strings and integers, so marshaling
	// can't fail.
	data, err := canonical(b)
	if err != nil {
		return ""
	}

	return hash(data)
}

// POW constructs a new Block on top of the previous block and performs the
// work to find a nonce that solves the proof of work puzzle.
func POW(ctx context.Context, difficulty uint, prevBlock Block, trans []Tx, now time.Time, evHandler func(v string, args ...any)) (Block, error) {

	// Construct the block to be mined. The nonce will be identified
	// by the POW algorithm.
	nb := NewBlock(prevBlock.Index+1, uint64(now.UnixMilli()), trans, prevBlock.Hash, 0)

	// Peform the proof of work mining operation.
	if err := nb.Seal(ctx, difficulty, evHandler); err != nil {
		return Block{}, err
	}

	return nb, nil
}

// Seal does the work of mining to find a valid hash for the block. The nonce
// search always starts at zero and walks forward one at a time. The context
// is checked on every attempt but a context that is never cancelled leaves
// the search running until a solution is found.
func (b *Block) Seal(ctx context.Context, difficulty uint, ev func(v string, args ...any)) error {
	ev("database: Seal: MINING: started: blk[%d]", b.Index)
	defer ev("database: Seal: MINING: completed: blk[%d]", b.Index)

	for _, tx := range b.Transactions {
		ev("database: Seal: MINING: tx[%s]", tx)
	}

	b.Nonce = 0
	b.Hash = b.ComputeHash()

	var attempts uint64
	for !isHashSolved(difficulty, b.Hash) {
		attempts++
		if attempts%1_000_000 == 0 {
			ev("database: Seal: MINING: attempts[%d]", attempts)
		}

		// Did we get cancelled trying to solve the problem.
		if err := ctx.Err(); err != nil {
			ev("database: Seal: MINING: CANCELLED")
			return err
		}

		b.Nonce++
		b.Hash = b.ComputeHash()
	}

	ev("database: Seal: MINING: SOLVED: prevBlk[%s]: newBlk[%s]: attempts[%d]", b.PrevHash, b.Hash, attempts)

	return nil
}

// ValidateBlock takes a block and validates it to be the next block after the
// previous block in the chain.
func (b Block) ValidateBlock(previousBlock Block, difficulty uint, evHandler func(v string, args ...any)) error {
	evHandler("database: ValidateBlock: validate: blk[%d]: check: block index is the next index", b.Index)

	nextIndex := previousBlock.Index + 1
	if b.Index != nextIndex {
		return fmt.Errorf("this block is not the next index, got %d, exp %d", b.Index, nextIndex)
	}

	evHandler("database: ValidateBlock: validate: blk[%d]: check: hash matches block content", b.Index)

	if hash := b.ComputeHash(); hash != b.Hash {
		return fmt.Errorf("block %d has been changed, got %s, exp %s", b.Index, hash, b.Hash)
	}

	evHandler("database: ValidateBlock: validate: blk[%d]: check: block hash has been solved", b.Index)

	if !isHashSolved(difficulty, b.Hash) {
		return fmt.Errorf("%s invalid block hash", b.Hash)
	}

	evHandler("database: ValidateBlock: validate: blk[%d]: check: parent hash does match parent block", b.Index)

	if b.PrevHash != previousBlock.Hash {
		return fmt.Errorf("parent block hash doesn't match our known parent, got %s, exp %s", b.PrevHash, previousBlock.Hash)
	}

	return nil
}

// validateGenesis checks the block can be the first block in a chain.
func (b Block) validateGenesis() error {
	if b.Index != 0 {
		return fmt.Errorf("first block is not genesis, got index %d", b.Index)
	}

	if b.PrevHash != ZeroHash {
		return fmt.Errorf("genesis previous hash invalid, got %s, exp %s", b.PrevHash, ZeroHash)
	}

	if hash := b.ComputeHash(); hash != b.Hash {
		return fmt.Errorf("block 0 has been changed, got %s, exp %s", hash, b.Hash)
	}

	return nil
}

// isHashSolved checks the hash to make sure it complies with
// the POW rules. We need to match a difficulty number of 0's.
func isHashSolved(difficulty uint, hash string) bool {
	const match = "0000000000000000000000000000000000000000000000000000000000000000"

	if len(hash) != hashLength || difficulty > hashLength {
		return false
	}

	return hash[:difficulty] == match[:difficulty]
}

// =============================================================================

// BlockData represents what is written to storage for each block.
type BlockData struct {
	Index        uint64 `json:"index"`
	TimeStamp    uint64 `json:"timestamp"`
	Transactions []Tx   `json:"transactions"`
	PrevHash     string `json:"previous_hash"`
	Nonce        uint64 `json:"nonce"`
	Hash         string `json:"hash"`
}

// NewBlockData constructs the value to serialize to storage.
func NewBlockData(block Block) BlockData {
	trans := make([]Tx, len(block.Transactions))
	copy(trans, block.Transactions)

	return BlockData{
		Index:        block.Index,
		TimeStamp:    block.TimeStamp,
		Transactions: trans,
		PrevHash:     block.PrevHash,
		Nonce:        block.Nonce,
		Hash:         block.Hash,
	}
}

// ToBlock converts a BlockData into a Block. The stored hash is kept as is
// so it can be validated against the content.
func ToBlock(blockData BlockData) Block {
	trans := make([]Tx, len(blockData.Transactions))
	copy(trans, blockData.Transactions)

	return Block{
		Index:        blockData.Index,
		TimeStamp:    blockData.TimeStamp,
		Transactions: trans,
		PrevHash:     blockData.PrevHash,
		Nonce:        blockData.Nonce,
		Hash:         blockData.Hash,
	}
}
