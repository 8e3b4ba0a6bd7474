package main

import (
	"fmt"
	"time"

	"github.com/rsclarke/wgprov/internal/db"
	"github.com/spf13/cobra"
)

var historyFlags struct {
	limit int
}

var historyCmd = &cobra.Command{
	Use:   "history [username]",
	Short: "List recorded issuances",
	Long:  `List issuances from the ledger, newest first. Requires --db.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyFlags.limit, "limit", 50, "maximum number of entries (0 for all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if rootFlags.dbPath == "" {
		return fmt.Errorf("ledger database required (use --db flag or WGPROV_DB env var)")
	}

	var username string
	if len(args) == 1 {
		username = args[0]
	}

	database, err := db.Open(rootFlags.dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer database.Close()

	issuances, err := db.ListIssuances(database, username, historyFlags.limit)
	if err != nil {
		return fmt.Errorf("list issuances: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(issuances) == 0 {
		fmt.Fprintln(out, "No issuances found.")
		return nil
	}

	fmt.Fprintf(out, "%-19s  %-16s  %-10s  %-7s  %s\n", "ISSUED", "USERNAME", "TOKEN", "POLICY", "PASSWORD SHA256")
	for _, iss := range issuances {
		issued := time.Unix(iss.IssuedAt, 0).Format("2006-01-02 15:04:05")
		fmt.Fprintf(out, "%-19s  %-16s  %-10s  %-7s  %.16s\n", issued, iss.Username, iss.Token, iss.IndexPolicy, iss.PasswordFingerprint)
	}

	return nil
}
