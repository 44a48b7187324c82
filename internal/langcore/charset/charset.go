// Package charset defines the alphabets a pattern or DFA may be bounded to:
// Ascii ⊂ ExtendedAscii ⊂ BMP, per §3. The charset bounds AnyChar and the
// alphabet used during DFA construction.
package charset

import "fmt"

// Charset names one of the three supported alphabets. Non-goals (§1)
// exclude anything beyond the Basic Multilingual Plane, so there is no
// "Unicode" member here — BMP is the outer bound.
type Charset int

const (
	// Ascii is the 7-bit range [0x00, 0x7F].
	Ascii Charset = iota
	// ExtendedAscii is the 8-bit range [0x00, 0xFF].
	ExtendedAscii
	// BMP is the Basic Multilingual Plane, [0x00, 0xFFFF] minus the UTF-16
	// surrogate range, which cannot name a standalone rune.
	BMP
)

func (c Charset) String() string {
	switch c {
	case Ascii:
		return "ascii"
	case ExtendedAscii:
		return "extended_ascii"
	case BMP:
		return "bmp"
	default:
		return fmt.Sprintf("charset(%d)", int(c))
	}
}

// Contains reports whether r is within the named alphabet.
func (c Charset) Contains(r rune) bool {
	switch c {
	case Ascii:
		return r >= 0 && r <= 0x7F
	case ExtendedAscii:
		return r >= 0 && r <= 0xFF
	case BMP:
		if r < 0 || r > 0xFFFF {
			return false
		}
		if r >= 0xD800 && r <= 0xDFFF {
			// surrogate range: not a standalone BMP code point.
			return false
		}
		return true
	default:
		return false
	}
}

// Parse resolves the attribute-block spelling ('ascii' | 'extended_ascii')
// from §6's lexer attribute block, plus "bmp" for the widest charset (which
// has no textual-surface spelling in §6). Anything else is rejected.
func Parse(s string) (Charset, error) {
	switch s {
	case "ascii":
		return Ascii, nil
	case "extended_ascii":
		return ExtendedAscii, nil
	case "bmp":
		return BMP, nil
	default:
		return 0, fmt.Errorf("unknown charset %q", s)
	}
}
