package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/streamingfast/dumpx/dump"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	. "github.com/streamingfast/cli"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var DumpCmd = Command(dumpRunE,
	"dump <input-file>",
	"Dump a file's bytes as offset, hexadecimal cells and printable ASCII",
	ExactArgs(1),
	Flags(func(flags *pflag.FlagSet) {
		flags.StringP("output", "o", "", "Write to a new file instead of standard output, refusing to overwrite an existing one")
		flags.Int("width", dump.DefaultWidth, "Number of bytes shown per row")
		flags.Int("group", dump.DefaultGroupSize, "Number of bytes per group within a row, 0 disables grouping")
		flags.Bool("uppercase", false, "Render hex cells with uppercase letters")
		flags.String("placeholder", ".", "Glyph shown in the ASCII column for non-printable bytes")
		flags.Uint64("skip", 0, "Number of bytes to skip before dumping, shown offsets stay absolute")
		flags.Int64("length", dump.Unlimited, "Maximum number of bytes to dump, 0 is unbounded")
		flags.String("decompress", "none", "Input decompression: 'none', 'auto', 'zstd' or 'gzip'")
	}),
)

func dumpRunE(cmd *cobra.Command, args []string) (err error) {
	inputPath := args[0]

	formatter, err := newFormatter()
	if err != nil {
		return err
	}

	decompressor, err := dump.NewDecompressor(viper.GetString("dump-decompress"))
	if err != nil {
		return fmt.Errorf("decompress: %w", err)
	}

	skip := viper.GetUint64("dump-skip")
	length := dump.Limit(viper.GetInt64("dump-length"))

	zlog.Info("dumping file",
		zap.String("input", inputPath),
		zap.Uint64("skip", skip),
		zap.Stringer("length", length),
	)

	input, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer func() { err = multierr.Append(err, input.Close()) }()

	out, closeOut, err := openOutput(viper.GetString("dump-output"))
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, closeOut()) }()

	var src io.Reader = input
	if _, raw := decompressor.(dump.NoOpDecompressor); raw {
		// Raw files seek straight to the window, compressed streams are
		// skipped by reading below.
		if skip > 0 {
			if _, err := input.Seek(int64(skip), io.SeekStart); err != nil {
				return fmt.Errorf("seek input: %w", err)
			}
		}
	} else {
		var decompressed io.ReadCloser
		decompressed, err = decompressor.Reader(src)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer func() { err = multierr.Append(err, decompressed.Close()) }()

		src = decompressed
		if skip > 0 {
			if _, err := io.CopyN(io.Discard, src, int64(skip)); err != nil && err != io.EOF {
				return fmt.Errorf("skip input: %w", err)
			}
		}
	}

	if length.Bounded() {
		src = io.LimitReader(src, int64(length))
	}

	lines, err := formatter.DumpAt(out, src, skip)
	if err != nil {
		return err
	}

	zlog.Debug("dump done", zap.Int("lines", lines))
	return nil
}

func newFormatter() (*dump.Formatter, error) {
	width := viper.GetInt("dump-width")
	if width < 1 {
		return nil, fmt.Errorf("width must be at least 1, got %d", width)
	}

	group := viper.GetInt("dump-group")
	if group < 0 {
		return nil, fmt.Errorf("group cannot be negative, got %d", group)
	}

	placeholder := viper.GetString("dump-placeholder")
	if len(placeholder) != 1 {
		return nil, fmt.Errorf("placeholder must be a single ASCII character, got %q", placeholder)
	}

	opts := []dump.Option{
		dump.WithWidth(width),
		dump.WithGroupSize(group),
		dump.WithPlaceholder(placeholder[0]),
	}
	if viper.GetBool("dump-uppercase") {
		opts = append(opts, dump.WithUppercase())
	}

	return dump.NewFormatter(opts...), nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		out := bufio.NewWriter(os.Stdout)
		return out, out.Flush, nil
	}

	// O_EXCL: never clobber an existing file
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}

	out := bufio.NewWriter(f)
	return out, func() error {
		return multierr.Append(out.Flush(), f.Close())
	}, nil
}
