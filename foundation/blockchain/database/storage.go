package database

import "errors"

// ErrNotFound is returned by a Storage implementation when nothing has been
// written yet for the requested snapshot.
var ErrNotFound = errors.New("snapshot not found")

// Storage interface represents the behavior required to be implemented by any
// package providing support for storing and reading the blockchain. Every
// write replaces the whole snapshot.
type Storage interface {
	ReadBlocks() ([]BlockData, error)
	WriteBlocks(blocks []BlockData) error
	ReadAccounts() ([]Account, error)
	WriteAccounts(accounts []Account) error
	Close() error
}
