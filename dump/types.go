package dump

import (
	"fmt"
	"strconv"
)

// Line is a single row of a dump: up to one row width's worth of bytes
// starting at the absolute byte index Offset.
//
// Lines produced by an Iterator alias its internal buffer: Data is only
// valid until the next call to Next().
type Line struct {
	Offset uint64
	Data   []byte
}

func (l *Line) String() string {
	return fmt.Sprintf("line at 0x%08x (%d bytes)", l.Offset, len(l.Data))
}

const Unlimited = 0

// Limit is a byte budget for a dump. Zero or negative means unbounded.
type Limit int64

func (l Limit) Bounded() bool {
	return int64(l) > 0
}

func (l Limit) Unbounded() bool {
	return int64(l) <= 0
}

func (l Limit) String() string {
	if l.Unbounded() {
		return "unlimited"
	}

	return strconv.FormatInt(int64(l), 10)
}
