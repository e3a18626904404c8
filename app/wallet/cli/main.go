// This program is a command line wallet for the ledger node.
package main

import "github.com/saksham0008/CryptoCurrency-Simulation/app/wallet/cli/cmd"

func main() {
	cmd.Execute()
}
