// Package cmd contains wallet app
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var (
	url         string
	accountID   string
	accountFile string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&url, "url", "u", "http://localhost:8080", "Url of the node.")
	rootCmd.PersistentFlags().StringVarP(&accountID, "account", "a", "", "Wallet to use, defaults to the one in the account file.")
	rootCmd.PersistentFlags().StringVarP(&accountFile, "account-file", "f", "zblock/wallet", "File holding the wallet created by this cli.")
}

var rootCmd = &cobra.Command{
	Use:           "wallet",
	Short:         "Your simple wallet",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

// getAccount returns the wallet from the flag or the account file.
func getAccount() (string, error) {
	if accountID != "" {
		return accountID, nil
	}

	data, err := os.ReadFile(accountFile)
	if err != nil {
		return "", fmt.Errorf("no --account given and unable to read %s: %w", accountFile, err)
	}

	id := strings.TrimSpace(string(data))
	if id == "" {
		return "", errors.New("account file is empty")
	}

	return id, nil
}

// saveAccount writes the wallet to the account file.
func saveAccount(id string) error {
	if err := os.MkdirAll(filepath.Dir(accountFile), 0755); err != nil {
		return err
	}

	return os.WriteFile(accountFile, []byte(id+"\n"), 0600)
}
