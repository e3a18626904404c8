// Package disk implements the ability to read and write the blockchain
// snapshot to files on disk.
package disk

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/database"
)

// File names used inside the database folder.
const (
	blocksFile   = "blocks.json"
	accountsFile = "accounts.json"
)

// Disk represents the serialization implementation for reading and storing
// the chain and the accounts as whole JSON documents in a folder on disk.
// This implements the database.Storage interface.
type Disk struct {
	dbPath string
	mu     sync.Mutex
}

// New constructs a Disk value for use, creating the folder if needed.
func New(dbPath string) (*Disk, error) {
	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return nil, err
	}

	return &Disk{dbPath: dbPath}, nil
}

// Close in this implementation has nothing to do since every snapshot is
// written to disk and then immediately closed.
func (d *Disk) Close() error {
	return nil
}

// ReadBlocks reads the full chain from disk.
func (d *Disk) ReadBlocks() ([]database.BlockData, error) {
	var blocks []database.BlockData
	if err := d.read(blocksFile, &blocks); err != nil {
		return nil, err
	}

	return blocks, nil
}

// WriteBlocks replaces the chain on disk with the specified blocks.
func (d *Disk) WriteBlocks(blocks []database.BlockData) error {
	return d.write(blocksFile, blocks)
}

// ReadAccounts reads the created accounts from disk.
func (d *Disk) ReadAccounts() ([]database.Account, error) {
	var accounts []database.Account
	if err := d.read(accountsFile, &accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}

// WriteAccounts replaces the accounts on disk with the specified accounts.
func (d *Disk) WriteAccounts(accounts []database.Account) error {
	return d.write(accountsFile, accounts)
}

// =============================================================================

// read decodes the named document into v.
func (d *Disk) read(name string, v any) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := os.ReadFile(d.getPath(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return database.ErrNotFound
		}
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}

	return nil
}

// write encodes v and replaces the named document. The data is written to a
// temp file in the same folder first and then renamed over the document, so
// a failed write leaves the previous snapshot in place.
func (d *Disk) write(name string, v any) error {

	// Marshal the document for writing to disk in a more human readable format.
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	f, err := os.CreateTemp(d.dbPath, name+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, d.getPath(name)); err != nil {
		os.Remove(tmp)
		return err
	}

	return nil
}

// getPath forms the path to the specified document.
func (d *Disk) getPath(name string) string {
	return filepath.Join(d.dbPath, name)
}
