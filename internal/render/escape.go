// Package render converts line content into its displayed form.
package render

// table holds the display form of every byte value under caret and meta
// notation.
var table [256]string

func init() {
	for i := range table {
		table[i] = escape(byte(i))
	}
}

func escape(b byte) string {
	switch {
	case b == '\t':
		return "\t"
	case b < 0x20:
		return "^" + string(rune(b+64))
	case b < 0x7f:
		return string(rune(b))
	case b == 0x7f:
		return "^?"
	case b < 0xa0:
		return "M-^" + string(rune(b-64))
	case b < 0xff:
		return "M-" + string(rune(b-128))
	default:
		return "M-^?"
	}
}

// Escape returns the caret or meta notation for b. Printable ASCII and the
// horizontal tab are returned unchanged.
func Escape(b byte) string {
	return table[b]
}
