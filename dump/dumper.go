package dump

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Dump reads r to completion and writes one rendered row per line to w.
// It returns the number of rows written. An empty input writes nothing and
// returns zero with no error.
func (f *Formatter) Dump(w io.Writer, r io.Reader) (int, error) {
	return f.DumpAt(w, r, 0)
}

// DumpAt is Dump with absolute offsets starting at offset instead of zero.
func (f *Formatter) DumpAt(w io.Writer, r io.Reader, offset uint64) (int, error) {
	itr := NewIteratorAt(r, f.width, offset)

	lineBuf := make([]byte, 0, f.lineSize())
	count := 0
	for itr.Next() {
		lineBuf = f.AppendLine(lineBuf[:0], itr.Item())
		if _, err := w.Write(lineBuf); err != nil {
			return count, fmt.Errorf("write line: %w", err)
		}
		count++
	}
	if err := itr.Err(); err != nil {
		return count, fmt.Errorf("read input: %w", err)
	}

	if tracer.Enabled() {
		zlog.Debug("dump completed", zap.Int("lines", count), zap.Uint64("start_offset", offset))
	}

	return count, nil
}
