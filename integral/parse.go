package integral

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrEmpty     = errors.New("empty input")
	ErrMalformed = errors.New("malformed expression")
)

// squared names come first so that sin² is never read as sin.
var termPattern = regexp.MustCompile(`^([+-]?)(\d*)(sin²|cos²|tan²|cot²|sec²|csc²|sin|cos|tan|cot|sec|csc)\(x\)`)

var signReplacer = strings.NewReplacer(
	"--", "+",
	"+-", "-",
	"-+", "-",
	"++", "+",
)

// Normalize removes blanks, rewrites ^2 to the squared glyph and collapses
// runs of signs until a single sign remains between terms.
func Normalize(str string) string {
	str = strings.Join(strings.Fields(str), "")
	str = strings.ReplaceAll(str, "^2", squared)
	for {
		next := signReplacer.Replace(str)
		if next == str {
			break
		}
		str = next
	}
	return str
}

func Parse(input string) ([]Term, error) {
	str := Normalize(input)
	if str == "" {
		return nil, ErrEmpty
	}
	var terms []Term
	for pos := 0; pos < len(str); {
		ix := termPattern.FindStringSubmatchIndex(str[pos:])
		if ix == nil {
			return nil, fmt.Errorf("%w: invalid characters %q at offset %d", ErrMalformed, str[pos:], pos)
		}
		term, err := makeTerm(str[pos:], ix)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
		pos += ix[1]
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: no term found", ErrMalformed)
	}
	return terms, nil
}

func makeTerm(str string, ix []int) (Term, error) {
	var (
		sign   = str[ix[2]:ix[3]]
		digits = str[ix[4]:ix[5]]
		name   = str[ix[6]:ix[7]]
		term   Term
		err    error
	)
	if digits == "" {
		digits = "1"
	}
	term.Coefficient, err = strconv.Atoi(sign + digits)
	if err != nil {
		return term, fmt.Errorf("%w: %s%s: invalid coefficient", ErrMalformed, sign, digits)
	}
	term.Func, err = ParseFunc(name)
	return term, err
}
