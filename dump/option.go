package dump

// Option configures a Formatter at construction time.
type Option func(f *Formatter)

// WithWidth sets the number of bytes rendered per row. Non-positive values
// are ignored and the default width is kept.
func WithWidth(n int) Option {
	return func(f *Formatter) {
		if n > 0 {
			f.width = n
		}
	}
}

// WithGroupSize sets the number of bytes per group within a row. A size of
// zero disables grouping entirely; negative values are ignored.
func WithGroupSize(n int) Option {
	return func(f *Formatter) {
		if n >= 0 {
			f.groupSize = n
		}
	}
}

// WithUppercase renders hex cells with uppercase letters. Offsets stay
// lowercase.
func WithUppercase() Option {
	return func(f *Formatter) {
		f.hexTable = upperHexTable
	}
}

// WithPlaceholder sets the glyph shown in the ASCII column for bytes outside
// the printable range.
func WithPlaceholder(c byte) Option {
	return func(f *Formatter) {
		f.placeholder = c
	}
}
