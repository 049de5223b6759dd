package cmd

import (
	"fmt"
	"os"

	"addressbook/config"
	"addressbook/db"
	"addressbook/shell"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath      string
	verbose         bool
	allowDuplicates bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "addressbook",
	Short: "Manage contacts grouped into named address books",
	Long: `addressbook keeps contacts in named address books for the lifetime of
the process.

Run without arguments to start the interactive menu, or use "serve" to expose
the same directory over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("allow-duplicates") {
			cfg.AllowDuplicates = allowDuplicates
		}

		logger, err = config.NewLogger(cfg.Logging, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runShell,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&allowDuplicates, "allow-duplicates", false, "Allow several contacts with the same name in one book")

	rootCmd.AddCommand(serveCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newDirectory() *db.AddressBookManager {
	return db.NewAddressBookManager(db.WithAllowDuplicates(cfg.AllowDuplicates))
}

// runShell starts the interactive menu on the command's input and output.
func runShell(cmd *cobra.Command, args []string) error {
	logger.Debug("starting shell", zap.Bool("allow_duplicates", cfg.AllowDuplicates))
	return shell.New(newDirectory(), cmd.InOrStdin(), cmd.OutOrStdout(), logger).Run()
}
