package dump

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexCell(t *testing.T) {
	f := NewFormatter()
	assert.Equal(t, "00", f.HexCell(0x00))
	assert.Equal(t, "0f", f.HexCell(0x0F))
	assert.Equal(t, "a5", f.HexCell(0xA5))
	assert.Equal(t, "ff", f.HexCell(0xFF))

	upper := NewFormatter(WithUppercase())
	assert.Equal(t, "A5", upper.HexCell(0xA5))
	assert.Equal(t, "FF", upper.HexCell(0xFF))
	assert.Equal(t, "00", upper.HexCell(0x00))
}

func TestASCIICell(t *testing.T) {
	f := NewFormatter()

	tests := []struct {
		name   string
		input  byte
		expect byte
	}{
		{"below printable range", 0x1F, '.'},
		{"first printable", 0x20, ' '},
		{"last printable", 0x7E, '~'},
		{"delete", 0x7F, '.'},
		{"null byte", 0x00, '.'},
		{"high bit", 0xFF, '.'},
		{"letter", 'H', 'H'},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expect, f.ASCIICell(test.input))
		})
	}

	underscore := NewFormatter(WithPlaceholder('_'))
	assert.Equal(t, byte('_'), underscore.ASCIICell(0x00))
	assert.Equal(t, byte('H'), underscore.ASCIICell('H'))
}

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name   string
		opts   []Option
		line   Line
		expect string
	}{
		{
			name:   "hello",
			line:   Line{Offset: 0, Data: []byte("Hello")},
			expect: "0x00000000: 48 65 6c 6c  6f" + strings.Repeat(" ", 35) + "  Hello\n",
		},
		{
			name:   "non printable bytes",
			line:   Line{Offset: 0, Data: []byte{0x00, 0x01, 0xFF}},
			expect: "0x00000000: 00 01 ff" + strings.Repeat(" ", 42) + "  ...\n",
		},
		{
			name: "full row needs no padding",
			line: Line{Offset: 16, Data: []byte(strings.Repeat("A", 16))},
			expect: "0x00000010: 41 41 41 41  41 41 41 41  41 41 41 41  41 41 41 41" +
				"  AAAAAAAAAAAAAAAA\n",
		},
		{
			name:   "grouping disabled",
			opts:   []Option{WithGroupSize(0)},
			line:   Line{Offset: 0, Data: []byte("Hello")},
			expect: "0x00000000: 48 65 6c 6c 6f" + strings.Repeat(" ", 33) + "  Hello\n",
		},
		{
			name:   "uppercase cells keep lowercase offsets",
			opts:   []Option{WithUppercase()},
			line:   Line{Offset: 0xAB, Data: []byte{0xFF, 0x0A}},
			expect: "0x000000ab: FF 0A" + strings.Repeat(" ", 45) + "  ..\n",
		},
		{
			name:   "narrow width",
			opts:   []Option{WithWidth(4)},
			line:   Line{Offset: 4, Data: []byte("E")},
			expect: "0x00000004: 45" + strings.Repeat(" ", 9) + "  E\n",
		},
		{
			name:   "group size not dividing the width, full row",
			opts:   []Option{WithWidth(10)},
			line:   Line{Offset: 0, Data: []byte("0123456789")},
			expect: "0x00000000: 30 31 32 33  34 35 36 37  38 39  0123456789\n",
		},
		{
			name:   "group size not dividing the width, short row",
			opts:   []Option{WithWidth(10)},
			line:   Line{Offset: 10, Data: []byte("A")},
			expect: "0x0000000a: 41" + strings.Repeat(" ", 29) + "  A\n",
		},
		{
			name:   "offset beyond 32 bits grows past 8 digits",
			line:   Line{Offset: 0x123456789, Data: []byte{0x42}},
			expect: "0x123456789: 42" + strings.Repeat(" ", 48) + "  B\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := NewFormatter(test.opts...)
			assert.Equal(t, test.expect, f.FormatLine(&test.line))
		})
	}
}

func TestFormatLineColumnsStayAligned(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "defaults"},
		{name: "group divides the width", opts: []Option{WithWidth(16), WithGroupSize(8)}},
		{name: "group does not divide the width", opts: []Option{WithWidth(10), WithGroupSize(4)}},
		{name: "group larger than a leftover", opts: []Option{WithWidth(7), WithGroupSize(3)}},
		{name: "grouping disabled", opts: []Option{WithGroupSize(0)}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := NewFormatter(test.opts...)

			full := f.FormatLine(&Line{Offset: 0, Data: []byte(strings.Repeat("A", f.Width()))})
			short := f.FormatLine(&Line{Offset: uint64(f.Width()), Data: []byte("A")})

			// The ASCII gutter must start at the same column on every row.
			require.Equal(t, strings.Index(full, "  A"), strings.LastIndex(short, "  A"))
		})
	}
}

func TestCells(t *testing.T) {
	f := NewFormatter()
	line := &Line{Offset: 0, Data: []byte{0x48, 0x00, 0x7E}}

	assert.Equal(t, []string{"48", "00", "7e"}, f.HexCells(line))
	assert.Equal(t, "H.~", f.ASCIICells(line))
	assert.Len(t, f.HexCells(line), len(f.ASCIICells(line)))
}

func TestNewFormatterIgnoresInvalidOptions(t *testing.T) {
	f := NewFormatter(WithWidth(0), WithGroupSize(-3))
	assert.Equal(t, DefaultWidth, f.Width())
	assert.Equal(t, DefaultGroupSize, f.groupSize)
}
