package format

import (
	"fmt"
	"strings"
)

const (
	MinusAscii   = "-"
	MinusUnicode = "−"
	SquaredGlyph = "²"
	SquaredCaret = "^2"
)

// Style selects the glyphs used when a rendered expression is printed.
// Expressions are always built with an ascii minus and the squared glyph.
type Style struct {
	Minus   string
	Squared string
}

func Default() Style {
	return Style{
		Minus:   MinusAscii,
		Squared: SquaredGlyph,
	}
}

func Unicode() Style {
	s := Default()
	s.Minus = MinusUnicode
	return s
}

func (s Style) Render(str string) string {
	if s.Minus != "" && s.Minus != MinusAscii {
		str = strings.ReplaceAll(str, MinusAscii, s.Minus)
	}
	if s.Squared != "" && s.Squared != SquaredGlyph {
		str = strings.ReplaceAll(str, SquaredGlyph, s.Squared)
	}
	return str
}

func MinusFromString(str string) (string, error) {
	switch str {
	case "ascii", "", MinusAscii:
		return MinusAscii, nil
	case "unicode", MinusUnicode:
		return MinusUnicode, nil
	default:
		return "", fmt.Errorf("%s: unsupported minus style", str)
	}
}

func SquaredFromString(str string) (string, error) {
	switch str {
	case "glyph", "", SquaredGlyph:
		return SquaredGlyph, nil
	case "caret", SquaredCaret:
		return SquaredCaret, nil
	default:
		return "", fmt.Errorf("%s: unsupported power style", str)
	}
}
