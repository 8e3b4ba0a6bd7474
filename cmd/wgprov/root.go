package main

import (
	"fmt"
	"os"

	"github.com/rsclarke/wgprov/internal/config"
	"github.com/rsclarke/wgprov/internal/credential"
	"github.com/rsclarke/wgprov/internal/db"
	"github.com/rsclarke/wgprov/internal/logging"
	"github.com/rsclarke/wgprov/internal/provision"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

var rootFlags struct {
	poolPath    string
	script      string
	shell       string
	dbPath      string
	indexPolicy string
}

// newInvoker builds the process invoker for a run. Tests replace it.
var newInvoker = func(log *zap.Logger) provision.Invoker {
	return &provision.ScriptInvoker{
		Shell:  rootFlags.shell,
		Script: rootFlags.script,
		Logger: log.Named("invoker"),
	}
}

var rootCmd = &cobra.Command{
	Use:   "wgprov <username>",
	Short: "Provision a WireGuard client with a fresh token and password",
	Long: `wgprov generates a 10-letter token and a 10-character password drawn
from the character pool file, then runs the client provisioning script as

  <shell> <script> <username> <token> <password>

The script's output and exit status are not inspected.

A username that matches a subcommand name (generate, history, help,
completion) runs that subcommand. Put it after -- to provision it:

  wgprov -- generate`,
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(logging.FromEnv())
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logging.Sync(logger)
		}
	},
	RunE: runProvision,
}

func init() {
	cfg := config.FromEnv()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootFlags.poolPath, "pool", cfg.PoolPath, "character pool file (env: WGPROV_POOL)")
	flags.StringVar(&rootFlags.indexPolicy, "index-policy", cfg.IndexPolicy, "password index policy: uniform or legacy (env: WGPROV_INDEX_POLICY)")
	flags.StringVar(&rootFlags.dbPath, "db", cfg.DBPath, "issuance ledger database; empty disables it (env: WGPROV_DB)")
	rootCmd.Flags().StringVar(&rootFlags.script, "script", cfg.Script, "client provisioning script (env: WGPROV_SCRIPT)")
	rootCmd.Flags().StringVar(&rootFlags.shell, "shell", cfg.Shell, "interpreter used to run the script (env: WGPROV_SHELL)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newGenerator() (*credential.Generator, error) {
	policy, err := credential.ParseIndexPolicy(rootFlags.indexPolicy)
	if err != nil {
		return nil, err
	}
	return &credential.Generator{Policy: policy}, nil
}

func runProvision(cmd *cobra.Command, args []string) error {
	gen, err := newGenerator()
	if err != nil {
		return err
	}

	p := &provision.Provisioner{
		PoolPath:  rootFlags.poolPath,
		Generator: gen,
		Invoker:   newInvoker(logger),
		Logger:    logger.Named("provision"),
	}

	if rootFlags.dbPath != "" {
		database, err := db.Open(rootFlags.dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer database.Close()
		p.Ledger = &db.Ledger{DB: database}
	}

	_, err = p.Run(cmd.Context(), args[0])
	return err
}
