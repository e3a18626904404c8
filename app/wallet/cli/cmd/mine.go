package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine the pending transactions, paying the reward to your wallet.",
	RunE:  mineRun,
}

func init() {
	rootCmd.AddCommand(mineCmd)
}

func mineRun(cmd *cobra.Command, args []string) error {
	account, err := getAccount()
	if err != nil {
		return err
	}

	req := struct {
		Miner string `json:"miner"`
	}{
		Miner: account,
	}

	var resp struct {
		Status       string `json:"status"`
		Index        uint64 `json:"index"`
		Hash         string `json:"hash"`
		Nonce        uint64 `json:"nonce"`
		Transactions []any  `json:"transactions"`
	}
	if err := call(http.MethodPost, "/v1/mining/mine", req, &resp); err != nil {
		return err
	}

	if resp.Status != "" {
		fmt.Fprintln(cmd.OutOrStdout(), resp.Status)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Mined block %d with %d transactions: hash[%s] nonce[%d]\n", resp.Index, len(resp.Transactions), resp.Hash, resp.Nonce)

	return nil
}
