package database

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// MinerAccountID is the reserved sender for system-issued rewards. Transactions
// from this account are never checked against or debited from a balance.
const MinerAccountID AccountID = "MINER"

// =============================================================================

// ErrInvalidAccount is returned when an identity is empty or not valid UTF-8.
var ErrInvalidAccount = errors.New("invalid account")

// AccountID represents an identity that can hold a balance. The ledger trusts
// the identity strings it is given, so any non-empty UTF-8 string is valid.
type AccountID string

// ToAccountID converts a string to an account and validates it.
func ToAccountID(s string) (AccountID, error) {
	a := AccountID(s)
	if !a.IsAccountID() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAccount, s)
	}

	return a, nil
}

// IsAccountID verifies the identity is not empty and is valid UTF-8. Invalid
// bytes would be rewritten by the JSON encoder and the block hash would not
// survive a round trip through storage.
func (a AccountID) IsAccountID() bool {
	return a != "" && utf8.ValidString(string(a))
}

// IsMiner reports whether the account is the reserved reward issuer.
func (a AccountID) IsMiner() bool {
	return a == MinerAccountID
}

// =============================================================================

// Account represents a wallet created by the ledger along with the starting
// grant it received. This is what is written to the accounts snapshot.
type Account struct {
	AccountID AccountID       `json:"account"`
	Grant     decimal.Decimal `json:"grant"`
	TimeStamp uint64          `json:"timestamp"`
}

// =============================================================================

// Balances maps accounts to their current balance. A missing account has a
// balance of zero.
type Balances map[AccountID]decimal.Decimal

// Get returns the balance for the account or zero if the account is unknown.
func (b Balances) Get(accountID AccountID) decimal.Decimal {
	if bal, exists := b[accountID]; exists {
		return bal
	}

	return decimal.Zero
}

// Credit adds the amount to the account balance.
func (b Balances) Credit(accountID AccountID, amount decimal.Decimal) {
	b[accountID] = b.Get(accountID).Add(amount)
}

// Debit subtracts the amount from the account balance.
func (b Balances) Debit(accountID AccountID, amount decimal.Decimal) {
	b[accountID] = b.Get(accountID).Sub(amount)
}

// Copy returns an independent copy of the balances.
func (b Balances) Copy() Balances {
	cpy := make(Balances, len(b))
	for accountID, bal := range b {
		cpy[accountID] = bal
	}

	return cpy
}

// Total returns the sum of every balance.
func (b Balances) Total() decimal.Decimal {
	total := decimal.Zero
	for _, bal := range b {
		total = total.Add(bal)
	}

	return total
}

// Accounts returns the account ids sorted in ascending order.
func (b Balances) Accounts() []AccountID {
	ids := make([]AccountID, 0, len(b))
	for accountID := range b {
		ids = append(ids, accountID)
	}
	sort.Sort(byAccount(ids))

	return ids
}

// =============================================================================

// byAccount provides sorting support by the account id value.
type byAccount []AccountID

// Len returns the number of accounts in the list.
func (ba byAccount) Len() int {
	return len(ba)
}

// Less helps to sort the list by account id in ascending order.
func (ba byAccount) Less(i, j int) bool {
	return ba[i] < ba[j]
}

// Swap moves accounts in the order of the account id value.
func (ba byAccount) Swap(i, j int) {
	ba[i], ba[j] = ba[j], ba[i]
}
