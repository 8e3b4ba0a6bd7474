package main

import (
	"fmt"

	"github.com/rsclarke/wgprov/internal/pool"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a token and password without running the script",
	Long: `Load the character pool and print one token and one password.
Nothing is invoked and nothing is recorded. Useful to check a pool file
against the selected index policy.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gen, err := newGenerator()
	if err != nil {
		return err
	}

	chars, err := pool.Load(rootFlags.poolPath)
	if err != nil {
		return fmt.Errorf("load character pool: %w", err)
	}

	token := gen.Token()
	password, err := gen.Password(chars)
	if err != nil {
		return fmt.Errorf("generate password: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Token:    %s\n", token)
	fmt.Fprintf(out, "Password: %s\n", password)
	return nil
}
