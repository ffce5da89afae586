package dump

import "strings"

const (
	DefaultWidth       = 16
	DefaultGroupSize   = 4
	DefaultPlaceholder = '.'
)

const (
	lowerHexTable = "0123456789abcdef"
	upperHexTable = "0123456789ABCDEF"

	// "0x" + 8 hex digits + ": "
	offsetSectionWidth = 2 + 8 + 2
)

// Formatter renders Lines as fixed-width rows of offset, hex cells and a
// printable-ASCII gutter. Rendering is a total function: every byte value has
// a defined hex and ASCII mapping, so identical input always yields identical
// text and no error paths exist.
type Formatter struct {
	width       int
	groupSize   int
	placeholder byte
	hexTable    string
}

func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		width:       DefaultWidth,
		groupSize:   DefaultGroupSize,
		placeholder: DefaultPlaceholder,
		hexTable:    lowerHexTable,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Width is the number of bytes rendered per row.
func (f *Formatter) Width() int {
	return f.width
}

// HexCell returns the two-digit hex rendering of a single byte.
func (f *Formatter) HexCell(b byte) string {
	return string([]byte{f.hexTable[b>>4], f.hexTable[b&0xF]})
}

// ASCIICell returns the byte's own glyph when it falls in the printable
// range 0x20-0x7E, the placeholder otherwise. Control bytes, high-bit bytes
// and NUL all map to the placeholder.
func (f *Formatter) ASCIICell(b byte) byte {
	if b >= 0x20 && b <= 0x7E {
		return b
	}
	return f.placeholder
}

// HexCells returns one two-character cell per byte of the line.
func (f *Formatter) HexCells(line *Line) []string {
	out := make([]string, len(line.Data))
	for i, b := range line.Data {
		out[i] = f.HexCell(b)
	}
	return out
}

// ASCIICells returns the line's ASCII gutter, one character per byte.
func (f *Formatter) ASCIICells(line *Line) string {
	var sb strings.Builder
	sb.Grow(len(line.Data))
	for _, b := range line.Data {
		sb.WriteByte(f.ASCIICell(b))
	}
	return sb.String()
}

// AppendLine renders one row into dst and returns the extended slice. The
// row ends with a newline. Rows shorter than the configured width keep the
// ASCII gutter aligned by space-padding the hex section only; the ASCII
// column is never padded.
func (f *Formatter) AppendLine(dst []byte, line *Line) []byte {
	dst = append(dst, '0', 'x')
	dst = appendOffset(dst, line.Offset)
	dst = append(dst, ':', ' ')

	written := 0
	for j, b := range line.Data {
		if j > 0 {
			if f.groupSize > 0 && j%f.groupSize == 0 {
				dst = append(dst, ' ', ' ')
				written += 2
			} else {
				dst = append(dst, ' ')
				written++
			}
		}
		dst = append(dst, f.hexTable[b>>4], f.hexTable[b&0xF])
		written += 2
	}

	for section := f.hexSectionWidth(); written < section; written++ {
		dst = append(dst, ' ')
	}

	dst = append(dst, ' ', ' ')
	for _, b := range line.Data {
		dst = append(dst, f.ASCIICell(b))
	}

	return append(dst, '\n')
}

// FormatLine renders one row, newline included.
func (f *Formatter) FormatLine(line *Line) string {
	return string(f.AppendLine(nil, line))
}

// hexSectionWidth is the rendered width of a full row's hex section: two
// digits per cell, one space between cells, one extra space between groups.
func (f *Formatter) hexSectionWidth() int {
	w := f.width*3 - 1
	if f.groupSize > 0 {
		w += (f.width - 1) / f.groupSize
	}
	return w
}

// lineSize is an allocation hint for one full rendered row.
func (f *Formatter) lineSize() int {
	return offsetSectionWidth + f.hexSectionWidth() + 2 + f.width + 1
}

// appendOffset writes the offset as lowercase hex, left-padded with zeros to
// 8 digits, growing past 8 digits for offsets beyond 4 GiB.
func appendOffset(dst []byte, off uint64) []byte {
	digits := 8
	for v := off >> 32; v > 0; v >>= 4 {
		digits++
	}
	for i := digits - 1; i >= 0; i-- {
		dst = append(dst, lowerHexTable[(off>>(uint(i)*4))&0xF])
	}
	return dst
}
