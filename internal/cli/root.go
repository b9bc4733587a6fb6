// Package cli wires cobra commands for splitting a file into (k,n) shares
// and joining k of them back into the original file.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lcrostarosa/shamirida/internal/logging"
)

// Version is set at build time.
var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "shamirida",
	Short: "Split a file into shares, or join shares back into a file",
	Long: `shamirida splits a file into n shares such that any k of them
reconstruct it while any k-1 reveal nothing. The symmetric key is
protected by Shamir's Secret Sharing; the (much larger) ciphertext is
protected by Rabin's Information Dispersal Algorithm, so each share is
only a fraction of the original file's size.`,
}

// Execute runs the CLI, exiting nonzero on error.
func Execute() {
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		PrintError("%v", err)
		os.Exit(1)
	}
}

// SetVersion sets the version string reported by --version.
func SetVersion(v string) {
	Version = v
	rootCmd.Version = v
}

func init() {
	cobra.OnInitialize(logging.InitDefault)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
