package cmd

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/database"
	"github.com/spf13/cobra"
)

var (
	to     string
	amount string
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send value to another wallet.",
	RunE:  sendRun,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&to, "to", "t", "", "Wallet receiving the value.")
	sendCmd.Flags().StringVarP(&amount, "amount", "v", "", "Amount to send.")
}

func sendRun(cmd *cobra.Command, args []string) error {
	account, err := getAccount()
	if err != nil {
		return err
	}

	if to == "" {
		return errors.New("--to is required")
	}

	value, err := database.ParseAmount(amount)
	if err != nil {
		return err
	}

	req := struct {
		Sender    string `json:"sender"`
		Recipient string `json:"recipient"`
		Amount    string `json:"amount"`
	}{
		Sender:    account,
		Recipient: to,
		Amount:    value.String(),
	}

	if err := call(http.MethodPost, "/v1/tx/send", req, nil); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Sent %s from %s to %s\n", value, account, to)

	return nil
}
