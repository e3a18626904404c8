package public

import (
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/database"
	"github.com/shopspring/decimal"
)

type sendRequest struct {
	Sender    string           `json:"sender" validate:"required"`
	Recipient string           `json:"recipient" validate:"required"`
	Amount    *decimal.Decimal `json:"amount" validate:"required"`
}

type mineRequest struct {
	Miner string `json:"miner" validate:"required"`
}

type status struct {
	Status string `json:"status"`
}

type tx struct {
	Sender        database.AccountID `json:"sender"`
	SenderName    string             `json:"sender_name"`
	Recipient     database.AccountID `json:"recipient"`
	RecipientName string             `json:"recipient_name"`
	Amount        decimal.Decimal    `json:"amount"`
	TimeStamp     uint64             `json:"timestamp"`
}

type historyTx struct {
	tx
	Block uint64 `json:"block"`
}

type block struct {
	Index        uint64 `json:"index"`
	TimeStamp    uint64 `json:"timestamp"`
	Transactions []tx   `json:"transactions"`
	PrevHash     string `json:"previous_hash"`
	Nonce        uint64 `json:"nonce"`
	Hash         string `json:"hash"`
}

type balance struct {
	Account database.AccountID `json:"account"`
	Name    string             `json:"name"`
	Balance decimal.Decimal    `json:"balance"`
}

type balances struct {
	LatestBlock string    `json:"latest_block"`
	Uncommitted int       `json:"uncommitted"`
	Balances    []balance `json:"balances"`
}

type account struct {
	Account   database.AccountID `json:"account"`
	Grant     decimal.Decimal    `json:"grant"`
	TimeStamp uint64             `json:"timestamp"`
}
