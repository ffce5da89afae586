package dump

import (
	"bufio"
	"io"
)

const ioBufferSize = 64 * 1024

// Iterator lazily partitions a reader into Lines of at most `width` bytes,
// in offset order. Only the final line may be shorter. Memory stays bounded:
// one row-sized buffer plus the read buffer, whatever the input size.
//
// Assumptions:
//
// * Next() must never be called again after it returned `false`
// * The Line returned by Item() aliases the iterator's buffer and is only
//   valid until the next call to Next()
// * The sequence is forward-only and not restartable
type Iterator struct {
	src      *bufio.Reader
	buf      []byte
	offset   uint64
	lastItem Line
	err      error
	done     bool
}

// NewIterator provides a streaming sequence of Lines over r.
func NewIterator(r io.Reader, width int) *Iterator {
	return NewIteratorAt(r, width, 0)
}

// NewIteratorAt is NewIterator with the first line starting at the given
// absolute offset, for dumps of a window inside a larger input.
func NewIteratorAt(r io.Reader, width int, offset uint64) *Iterator {
	if width < 1 {
		width = DefaultWidth
	}
	return &Iterator{
		src:    bufio.NewReaderSize(r, ioBufferSize),
		buf:    make([]byte, width),
		offset: offset,
	}
}

func (it *Iterator) Next() bool {
	if it.done {
		return false
	}

	n, err := io.ReadFull(it.src, it.buf)
	if n == 0 {
		it.done = true
		if err != nil && err != io.EOF {
			it.err = err
		}
		return false
	}

	it.lastItem = Line{Offset: it.offset, Data: it.buf[:n]}
	it.offset += uint64(n)

	if err != nil {
		// A short final line is not an error, anything else surfaces
		// through Err() once the consumer drains this last item.
		it.done = true
		if err != io.EOF && err != io.ErrUnexpectedEOF {
			it.err = err
		}
	}

	return true
}

func (it *Iterator) Item() *Line {
	return &it.lastItem
}

func (it *Iterator) Err() error {
	return it.err
}
