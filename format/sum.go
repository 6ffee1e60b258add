package format

import (
	"strconv"
	"strings"
)

// Coefficient prefixes text with its coefficient: 0 gives "0", 1 and -1 are
// elided to the bare text or a minus sign.
func Coefficient(c int, text string) string {
	switch c {
	case 0:
		return "0"
	case 1:
		return text
	case -1:
		return "-" + text
	default:
		return strconv.Itoa(c) + text
	}
}

func Group(text string) string {
	return "(" + text + ")"
}

type part struct {
	coeff    int
	text     string
	compound bool
}

// Sum renders signed parts left to right. Only the leading part carries its
// own minus sign, following parts are joined by a + or - operator.
type Sum struct {
	KeepZero bool
	parts    []part
}

func (s *Sum) Add(coeff int, text string, compound bool) {
	p := part{
		coeff:    coeff,
		text:     text,
		compound: compound,
	}
	s.parts = append(s.parts, p)
}

func (s *Sum) String() string {
	parts := s.visible()
	if len(parts) == 0 {
		return "0"
	}
	var str strings.Builder
	for i, p := range parts {
		text := p.text
		if p.compound && (len(parts) > 1 || p.coeff != 1) {
			text = Group(text)
		}
		if i == 0 {
			str.WriteString(Coefficient(p.coeff, text))
			continue
		}
		var (
			op   = " + "
			term = Coefficient(p.coeff, text)
		)
		if p.coeff < 0 {
			op = " - "
			term = strings.TrimPrefix(term, "-")
		}
		str.WriteString(op)
		str.WriteString(term)
	}
	return str.String()
}

func (s *Sum) visible() []part {
	if s.KeepZero {
		return s.parts
	}
	var list []part
	for _, p := range s.parts {
		if p.coeff == 0 {
			continue
		}
		list = append(list, p)
	}
	return list
}
