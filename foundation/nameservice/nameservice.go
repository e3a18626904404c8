// Package nameservice reads the users file and creates a name service lookup
// for the wallets of known users.
package nameservice

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/database"
)

// user is the part of a users file entry the name service needs.
type user struct {
	Wallet string `json:"wallet"`
}

// NameService maintains a map of accounts for name lookup.
type NameService struct {
	accounts map[database.AccountID]string
}

// New constructs a name service from the users file. The file maps a user
// name to the wallet it owns. A missing file produces an empty name service.
func New(path string) (*NameService, error) {
	ns := NameService{
		accounts: make(map[database.AccountID]string),
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &ns, nil
		}
		return nil, fmt.Errorf("reading users: %w", err)
	}

	var users map[string]user
	if err := json.Unmarshal(content, &users); err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}

	for name, u := range users {
		accountID, err := database.ToAccountID(u.Wallet)
		if err != nil {
			return nil, fmt.Errorf("user %q: %w", name, err)
		}
		ns.accounts[accountID] = name
	}

	return &ns, nil
}

// Lookup returns the name for the specified account.
func (ns *NameService) Lookup(accountID database.AccountID) string {
	name, exists := ns.accounts[accountID]
	if !exists {
		return string(accountID)
	}
	return name
}

// Copy returns a copy of the map of names and accounts.
func (ns *NameService) Copy() map[database.AccountID]string {
	cpy := make(map[database.AccountID]string, len(ns.accounts))
	for accountID, name := range ns.accounts {
		cpy[accountID] = name
	}
	return cpy
}
