package database

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// ZeroHash is the previous hash recorded by the genesis block.
const ZeroHash = "0"

// hashLength is the length of a hex encoded sha256 hash.
const hashLength = 2 * sha256.Size

// =============================================================================

// blockContent is the canonical form of a block used for hashing. The field
// order is fixed by the struct declaration and the hash field is excluded.
// Changing this type changes every block hash on disk.
type blockContent struct {
	Index        uint64      `json:"index"`
	Nonce        uint64      `json:"nonce"`
	PrevHash     string      `json:"previous_hash"`
	TimeStamp    uint64      `json:"timestamp"`
	Transactions []txContent `json:"transactions"`
}

// txContent is the canonical form of a transaction used for hashing. Amounts
// are written as decimal strings with trailing zeros removed so 4, 4.0 and
// 4.00 hash the same.
type txContent struct {
	Amount    string `json:"amount"`
	Recipient string `json:"recipient"`
	Sender    string `json:"sender"`
	TimeStamp uint64 `json:"timestamp"`
}

// canonical produces the byte encoding of the block that is hashed.
func canonical(b Block) ([]byte, error) {
	trans := make([]txContent, len(b.Transactions))
	for i, tx := range b.Transactions {
		trans[i] = txContent{
			Amount:    tx.Amount.String(),
			Recipient: string(tx.Recipient),
			Sender:    string(tx.Sender),
			TimeStamp: tx.TimeStamp,
		}
	}

	bc := blockContent{
		Index:        b.Index,
		Nonce:        b.Nonce,
		PrevHash:     b.PrevHash,
		TimeStamp:    b.TimeStamp,
		Transactions: trans,
	}

	return json.Marshal(bc)
}

// hash returns the lowercase hex encoded sha256 of the data.
func hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
