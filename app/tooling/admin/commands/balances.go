// Package commands contains the functionality for the set of commands
// currently supported by the admin tool.
package commands

import (
	"fmt"
	"io"

	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/database"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/state"
)

// Balances prints the current set of balances.
func Balances(w io.Writer, st *state.State, args []string) error {
	bals := st.RetrieveBalances()

	if len(args) == 1 {
		accountID, err := database.ToAccountID(args[0])
		if err != nil {
			return err
		}
		bals = database.Balances{accountID: st.QueryBalance(accountID)}
	}

	fmt.Fprintf(w, "LatestBlockHash: %s\n\n", st.RetrieveLatestBlock().Hash)

	for _, accountID := range bals.Accounts() {
		fmt.Fprintf(w, "Account: %s  Balance: %s\n", accountID, bals[accountID])
	}

	return nil
}
