// This program performs administrative tasks against the ledger stored on
// disk. The node should be stopped while it runs.
package main

import (
	"fmt"
	"os"

	"github.com/saksham0008/CryptoCurrency-Simulation/app/tooling/admin/commands"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/genesis"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/state"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/blockchain/storage/disk"
	"github.com/saksham0008/CryptoCurrency-Simulation/foundation/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {

	// Construct the application logger.
	log, err := logger.New("ADMIN", "stderr")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	// Perform the startup and shutdown sequence.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {
	var (
		dbPath      string
		genesisPath string
	)

	// open loads and verifies the ledger for a command.
	open := func() (*state.State, error) {
		gen, err := genesis.Load(genesisPath)
		if err != nil {
			return nil, fmt.Errorf("loading genesis: %w", err)
		}

		strg, err := disk.New(dbPath)
		if err != nil {
			return nil, fmt.Errorf("opening storage: %w", err)
		}

		return state.New(state.Config{
			Genesis: gen,
			Storage: strg,
			EvHandler: func(v string, args ...any) {
				log.Debugf(v, args...)
			},
		})
	}

	rootCmd := &cobra.Command{
		Use:           "admin",
		Short:         "Inspect and verify the ledger on disk.",
		Version:       build,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "zblock/data/", "Directory holding the ledger snapshot.")
	rootCmd.PersistentFlags().StringVar(&genesisPath, "genesis", "zblock/genesis.json", "Path to the genesis file.")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "balances [account]",
			Short: "Print the balances rebuilt from the chain.",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				st, err := open()
				if err != nil {
					return err
				}
				defer st.Shutdown()

				if err := commands.Balances(cmd.OutOrStdout(), st, args); err != nil {
					return fmt.Errorf("getting balances: %w", err)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "transactions [account]",
			Short: "Print the mined transactions.",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				st, err := open()
				if err != nil {
					return err
				}
				defer st.Shutdown()

				if err := commands.Transactions(cmd.OutOrStdout(), st, args); err != nil {
					return fmt.Errorf("getting transactions: %w", err)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "verify",
			Short: "Load the chain and check every block and balance.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				st, err := open()
				if err != nil {
					return fmt.Errorf("verifying chain: %w", err)
				}
				defer st.Shutdown()

				return commands.Verify(cmd.OutOrStdout(), st)
			},
		},
	)

	return rootCmd.Execute()
}
