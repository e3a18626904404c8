package commands

import (
	"fmt"
	"io"

	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/database"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/state"
)

// Transactions prints the mined transactions, optionally for one account.
func Transactions(w io.Writer, st *state.State, args []string) error {
	var accountID database.AccountID
	if len(args) == 1 {
		accountID = database.AccountID(args[0])
	}

	fmt.Fprintf(w, "LatestBlockHash: %s\n\n", st.RetrieveLatestBlock().Hash)

	for _, tx := range st.QueryHistory(accountID) {
		fmt.Fprintf(w, "Block: %d  From: %s  To: %s  Amount: %s  TimeStamp: %d\n",
			tx.Block, tx.Sender, tx.Recipient, tx.Amount, tx.TimeStamp)
	}

	return nil
}
