package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var noSave bool

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new wallet holding the starting grant.",
	RunE:  createRun,
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().BoolVar(&noSave, "no-save", false, "Don't write the wallet to the account file.")
}

func createRun(cmd *cobra.Command, args []string) error {
	var acct struct {
		Account string `json:"account"`
		Grant   string `json:"grant"`
	}
	if err := call(http.MethodPost, "/v1/accounts/create", nil, &acct); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Account: %s  Grant: %s\n", acct.Account, acct.Grant)

	if noSave {
		return nil
	}

	return saveAccount(acct.Account)
}
