package dump

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Decompressor wraps an input stream before it is dumped, so compressed
// files can be inspected in their decompressed form. Callers must Close the
// returned reader to release decoder resources; closing never closes the
// underlying input.
type Decompressor interface {
	Reader(in io.Reader) (io.ReadCloser, error)
}

func NewDecompressor(mode string) (Decompressor, error) {
	switch mode {
	case "", "auto":
		return SniffDecompressor{}, nil
	case "zstd":
		return ZstdDecompressor{}, nil
	case "gzip":
		return GzipDecompressor{}, nil
	case "none", "false", "no":
		return NoOpDecompressor{}, nil
	default:
		return nil, fmt.Errorf("invalid decompress value %q, use 'auto', 'zstd', 'gzip' or 'none'", mode)
	}
}

type NoOpDecompressor struct{}

func (NoOpDecompressor) Reader(in io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(in), nil
}

type ZstdDecompressor struct{}

func (ZstdDecompressor) Reader(in io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(in)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	return dec.IOReadCloser(), nil
}

type GzipDecompressor struct{}

func (GzipDecompressor) Reader(in io.Reader) (io.ReadCloser, error) {
	dec, err := gzip.NewReader(in)
	if err != nil {
		return nil, fmt.Errorf("gzip reader: %w", err)
	}
	return dec, nil
}

var (
	zstdMagicBytes = []byte{0x28, 0xB5, 0x2F, 0xFD}
	gzipMagicBytes = []byte{0x1F, 0x8B}
)

// SniffDecompressor peeks at the stream's magic bytes without consuming them
// and picks the matching decompressor, passing unrecognized input through
// untouched.
type SniffDecompressor struct{}

func (SniffDecompressor) Reader(in io.Reader) (io.ReadCloser, error) {
	buffered := bufio.NewReader(in)

	magic, err := buffered.Peek(len(zstdMagicBytes))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("sniff input: %w", err)
	}

	switch {
	case bytes.HasPrefix(magic, zstdMagicBytes):
		return ZstdDecompressor{}.Reader(buffered)
	case bytes.HasPrefix(magic, gzipMagicBytes):
		return GzipDecompressor{}.Reader(buffered)
	default:
		return io.NopCloser(buffered), nil
	}
}
