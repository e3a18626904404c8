package commands

import (
	"fmt"
	"io"

	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/state"
)

// Verify reports on a ledger that loaded, which means every block passed its
// hash, link, and proof of work checks. The rebuilt balances are checked for
// negatives.
func Verify(w io.Writer, st *state.State) error {
	chain := st.RetrieveChain()
	bals := st.RetrieveBalances()

	var negatives int
	for _, accountID := range bals.Accounts() {
		if bal := bals[accountID]; bal.IsNegative() {
			fmt.Fprintf(w, "Account: %s  has negative balance %s\n", accountID, bal)
			negatives++
		}
	}

	fmt.Fprintf(w, "Blocks: %d  Accounts: %d  Total: %s\n", len(chain), len(bals), bals.Total())
	fmt.Fprintf(w, "LatestBlockHash: %s\n", chain[len(chain)-1].Hash)

	if negatives > 0 {
		return fmt.Errorf("%d accounts have a negative balance", negatives)
	}

	fmt.Fprintln(w, "chain verified")

	return nil
}
