// Package state is the core API for the blockchain and implements all the
// business rules and processing.
package state

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/database"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/genesis"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/mempool"
)

//go:generate mockgen -destination=mocks_test.go -package=state_test github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/database Storage

// EventHandler defines a function that is called when events
// occur in the processing of the ledger.
type EventHandler func(v string, args ...any)

// =============================================================================

// Config represents the configuration required to start the ledger.
type Config struct {
	Genesis      genesis.Genesis
	Storage      database.Storage
	Now          func() time.Time // Clock used to stamp transactions and blocks.
	NewAccountID func() string    // Generator for the ids of created accounts.
	EvHandler    EventHandler
}

// State manages the blockchain database.
type State struct {
	mu sync.Mutex

	genesis      genesis.Genesis
	evHandler    EventHandler
	now          func() time.Time
	newAccountID func() string

	mempool *mempool.Mempool
	db      *database.Database
}

// New constructs a new ledger, loading and verifying any chain already held
// in storage.
func New(cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	newAccountID := cfg.NewAccountID
	if newAccountID == nil {
		newAccountID = NewAccountID
	}

	if err := cfg.Genesis.Validate(); err != nil {
		return nil, err
	}

	// Access the storage for the blockchain and rebuild the balances.
	db, err := database.New(cfg.Genesis, cfg.Storage, now(), ev)
	if err != nil {
		return nil, err
	}

	state := State{
		genesis:      cfg.Genesis,
		evHandler:    ev,
		now:          now,
		newAccountID: newAccountID,

		mempool: mempool.New(),
		db:      db,
	}

	return &state, nil
}

// Shutdown cleanly brings the ledger down.
func (s *State) Shutdown() error {
	s.evHandler("state: shutdown: started")
	defer s.evHandler("state: shutdown: completed")

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Close()
}

// =============================================================================

// NewAccountID generates 16 hex characters from a random uuid.
func NewAccountID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}
