package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lcrostarosa/shamirida/internal/blockmode"
	"github.com/lcrostarosa/shamirida/internal/cli/runner"
	"github.com/lcrostarosa/shamirida/internal/logging"
	"github.com/lcrostarosa/shamirida/internal/partition"
	"github.com/lcrostarosa/shamirida/internal/shamirida"
)

var splitCmd = &cobra.Command{
	Use:   "split INPUT",
	Short: "Split a file into n shares, k of which reconstruct it",
	Example: `  shamirida split -n 5 -k 3 -o vault secret.txt
  # writes vault.1 .. vault.5; any 3 of them reconstruct secret.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runner.Base().Wrap(runSplit),
}

func init() {
	f := splitCmd.Flags()
	f.IntP("n", "n", 0, "total number of shares to produce")
	f.IntP("k", "k", 0, "reconstruction threshold (defaults to n)")
	f.StringP("out", "o", "", "output prefix; shares are written to PREFIX.1 .. PREFIX.N")
	_ = splitCmd.MarkFlagRequired("n")
	_ = splitCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(splitCmd)
}

func runSplit(ctx *runner.CommandContext, cmd *cobra.Command, args []string) error {
	flags := runner.Flags(cmd)
	n := flags.Int("n")
	k := flags.Int("k")
	prefix := flags.String("out")
	if err := flags.Err(); err != nil {
		return err
	}
	if k == 0 {
		k = n
	}
	if n < 1 {
		return fmt.Errorf("-n must be at least 1, got %d", n)
	}
	params, err := shamirida.NewParams(k, n, blockmode.AES256CBCKeySize, blockmode.AES256CBCIVSize)
	if err != nil {
		return err
	}
	n, k = params.N, params.K

	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	files := make([]*os.File, n)
	outputs := make([]partition.OutputPartition, n)
	for i := 0; i < n; i++ {
		x := byte(i + 1)
		path := fmt.Sprintf("%s.%d", prefix, i+1)
		f, err := os.Create(path)
		if err != nil {
			closeAll(files[:i])
			return fmt.Errorf("creating %s: %w", path, err)
		}
		if _, err := f.Write([]byte{byte(k), x}); err != nil {
			closeAll(files[:i])
			return fmt.Errorf("writing header to %s: %w", path, err)
		}
		files[i] = f
		outputs[i] = partition.OutputPartition{X: x, W: f}
	}

	scheme := params.Scheme(blockmode.AES256CBC, nil)
	if err := scheme.Split(in, outputs); err != nil {
		closeAll(files)
		return fmt.Errorf("splitting: %w", err)
	}

	for i, f := range files {
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s.%d: %w", prefix, i+1, err)
		}
	}

	logging.Info("split complete",
		logging.String("op", ctx.OperationID),
		logging.String("prefix", prefix),
		logging.Int("n", n),
		logging.Int("k", k))
	PrintSuccess("wrote %d shares to %s.1..%s.%d (threshold %d)", n, prefix, prefix, n, k)
	return nil
}

func closeAll(files []*os.File) {
	for _, f := range files {
		if f != nil {
			_ = f.Close()
		}
	}
}
