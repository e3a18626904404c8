package state

import (
	"errors"

	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/database"
)

// Set of errors the ledger can return. Checks happen before any state is
// changed, so every error other than ErrPersistence means nothing changed.
var (
	ErrInvalidAmount     = database.ErrInvalidAmount
	ErrInvalidAccount    = database.ErrInvalidAccount
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNothingToMine     = errors.New("no transactions to mine")
	ErrPersistence       = errors.New("unable to persist ledger")
)
