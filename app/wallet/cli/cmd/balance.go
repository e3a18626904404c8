package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

type balance struct {
	Account string `json:"account"`
	Name    string `json:"name"`
	Balance string `json:"balance"`
}

type balances struct {
	LatestBlock string    `json:"latest_block"`
	Uncommitted int       `json:"uncommitted"`
	Balances    []balance `json:"balances"`
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print your balance.",
	RunE:  balanceRun,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func balanceRun(cmd *cobra.Command, args []string) error {
	account, err := getAccount()
	if err != nil {
		return err
	}

	var bals balances
	if err := call(http.MethodGet, "/v1/balances/list/"+account, nil, &bals); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "For Account:", account)
	if len(bals.Balances) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), bals.Balances[0].Balance)
	}

	return nil
}
