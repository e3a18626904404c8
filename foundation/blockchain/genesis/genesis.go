// Package genesis maintains access to the genesis file.
package genesis

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

// Default values used when the genesis file doesn't provide them.
const (
	DefaultDifficulty = 3
)

var (
	// DefaultMiningReward is paid to the miner of every block.
	DefaultMiningReward = decimal.NewFromInt(10)

	// DefaultAccountGrant is the starting balance of every created account.
	DefaultAccountGrant = decimal.NewFromInt(10)
)

// Genesis represents the genesis file.
type Genesis struct {
	Date         time.Time                  `json:"date"`
	Difficulty   uint                       `json:"difficulty"`    // Number of leading 0's needed to solve the work problem.
	MiningReward decimal.Decimal            `json:"mining_reward"` // Reward for mining a block.
	AccountGrant decimal.Decimal            `json:"account_grant"` // Starting balance for a newly created account.
	Balances     map[string]decimal.Decimal `json:"balances"`      // Balances minted before the first block.
}

// Default returns the genesis values used when no genesis file exists.
func Default() Genesis {
	return Genesis{
		Difficulty:   DefaultDifficulty,
		MiningReward: DefaultMiningReward,
		AccountGrant: DefaultAccountGrant,
		Balances:     map[string]decimal.Decimal{},
	}
}

// =============================================================================

// Load opens and consumes the genesis file. If the file doesn't exist the
// default genesis is returned. Fields missing from the file take their
// default value.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Genesis{}, err
	}

	genesis := Default()
	if err := json.Unmarshal(content, &genesis); err != nil {
		return Genesis{}, fmt.Errorf("decoding genesis: %w", err)
	}

	if err := genesis.Validate(); err != nil {
		return Genesis{}, err
	}

	return genesis, nil
}

// Validate checks the genesis values can run a chain.
func (g Genesis) Validate() error {
	if g.Difficulty == 0 || g.Difficulty > 64 {
		return fmt.Errorf("difficulty must be between 1 and 64, got %d", g.Difficulty)
	}

	if g.MiningReward.IsNegative() {
		return fmt.Errorf("mining reward can't be negative, got %s", g.MiningReward)
	}

	if g.AccountGrant.IsNegative() {
		return fmt.Errorf("account grant can't be negative, got %s", g.AccountGrant)
	}

	for account, balance := range g.Balances {
		if balance.IsNegative() {
			return fmt.Errorf("balance for %s can't be negative, got %s", account, balance)
		}
	}

	return nil
}
