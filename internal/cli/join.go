package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lcrostarosa/shamirida/internal/blockmode"
	"github.com/lcrostarosa/shamirida/internal/cli/runner"
	"github.com/lcrostarosa/shamirida/internal/logging"
	"github.com/lcrostarosa/shamirida/internal/partition"
	"github.com/lcrostarosa/shamirida/internal/shamirida"
)

var joinCmd = &cobra.Command{
	Use:   "join FILE1 FILE2 ...",
	Short: "Join k or more shares back into the original file",
	Example: `  shamirida join -o secret.txt vault.1 vault.3 vault.5`,
	Args: cobra.MinimumNArgs(2),
	RunE: runner.Base().Wrap(runJoin),
}

func init() {
	f := joinCmd.Flags()
	f.StringP("out", "o", "", "path to write the reconstructed file to")
	_ = joinCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(joinCmd)
}

// shareHeader is the 2-byte (k, x) prefix of every share file.
type shareHeader struct {
	k, x byte
}

func readShareHeader(f *os.File) (shareHeader, error) {
	var hdr [2]byte
	if _, err := io.ReadFull(f, hdr[:]); err != nil {
		return shareHeader{}, fmt.Errorf("reading share header: %w", err)
	}
	return shareHeader{k: hdr[0], x: hdr[1]}, nil
}

func runJoin(ctx *runner.CommandContext, cmd *cobra.Command, args []string) error {
	flags := runner.Flags(cmd)
	outPath := flags.String("out")
	if err := flags.Err(); err != nil {
		return err
	}

	files := make([]*os.File, len(args))
	headers := make([]shareHeader, len(args))
	for i, path := range args {
		f, err := os.Open(path)
		if err != nil {
			closeAll(files[:i])
			return fmt.Errorf("opening %s: %w", path, err)
		}
		hdr, err := readShareHeader(f)
		if err != nil {
			closeAll(files[:i+1])
			return fmt.Errorf("%s: %w", path, err)
		}
		files[i] = f
		headers[i] = hdr
	}
	defer closeAll(files)

	k := int(headers[0].k)
	var inputs []partition.InputPartition
	for i, hdr := range headers {
		if int(hdr.k) != k {
			continue
		}
		inputs = append(inputs, partition.InputPartition{X: hdr.x, R: files[i]})
		if len(inputs) == k {
			break
		}
	}
	if len(inputs) < k {
		return fmt.Errorf("only %d of %d given shares agree on threshold %d; need %d", len(inputs), len(args), k, k)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	params, err := shamirida.NewParams(k, 0, blockmode.AES256CBCKeySize, blockmode.AES256CBCIVSize)
	if err != nil {
		return err
	}
	scheme := params.Scheme(blockmode.AES256CBC, nil)
	if err := scheme.Join(inputs, out); err != nil {
		return fmt.Errorf("joining: %w", err)
	}

	logging.Info("join complete",
		logging.String("op", ctx.OperationID),
		logging.String("out", outPath),
		logging.Int("k", k),
		logging.Int("sharesUsed", len(inputs)))
	PrintSuccess("reconstructed %s from %d of %d shares (threshold %d)", outPath, len(inputs), len(args), k)
	return nil
}
