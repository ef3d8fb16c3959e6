// Package main is the entry point for the encryption-tools-cli application.
// It initializes the root command and registers the symmetric, asymmetric and
// large-data sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/encryption-tools/cmd/encryption-tools-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "encryption-tools-cli",
		Short: "Symmetric and asymmetric file encryption CLI tool",
		Long: `encryption-tools-cli encrypts and decrypts files with a shared secret or an RSA key pair.
Files too large for a single RSA block are handled by the encrypt-large/decrypt-large commands,
which protect a one-time secret with RSA and the file content with a symmetric cipher.

Configuration is read from the file given with --config and from environment variables
prefixed with ENCRYPTION_TOOLS_, e.g. ENCRYPTION_TOOLS_ENCRYPTION_DEFAULT_METHOD=aes-128-gcm.`,
		SilenceUsage: true,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	commands.RegisterConfigFlag(rootCmd)
	provider := commands.NewHelperProvider()

	if err := commands.InitSymmetricCommands(rootCmd, provider); err != nil {
		return fmt.Errorf("failed to initialize symmetric commands: %w", err)
	}

	if err := commands.InitAsymmetricCommands(rootCmd, provider); err != nil {
		return fmt.Errorf("failed to initialize asymmetric commands: %w", err)
	}

	if err := commands.InitLargeDataCommands(rootCmd, provider); err != nil {
		return fmt.Errorf("failed to initialize large data commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
