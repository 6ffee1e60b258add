package integral

import (
	"fmt"
	"strings"

	"github.com/midbel/trigint/format"
)

type Func int8

const (
	Invalid Func = iota
	Sin
	Cos
	Tan
	Cot
	Sec
	Csc
	Sin2
	Cos2
	Tan2
	Cot2
	Sec2
	Csc2
)

const squared = "²"

var funcNames = [...]string{
	Sin:  "sin",
	Cos:  "cos",
	Tan:  "tan",
	Cot:  "cot",
	Sec:  "sec",
	Csc:  "csc",
	Sin2: "sin" + squared,
	Cos2: "cos" + squared,
	Tan2: "tan" + squared,
	Cot2: "cot" + squared,
	Sec2: "sec" + squared,
	Csc2: "csc" + squared,
}

func Funcs() []Func {
	return []Func{Sin, Cos, Tan, Cot, Sec, Csc, Sin2, Cos2, Tan2, Cot2, Sec2, Csc2}
}

func ParseFunc(str string) (Func, error) {
	str = strings.TrimSuffix(str, "(x)")
	str = strings.ReplaceAll(str, "^2", squared)
	for _, f := range Funcs() {
		if funcNames[f] == str {
			return f, nil
		}
	}
	return Invalid, fmt.Errorf("%w: %s: unknown function", ErrMalformed, str)
}

func (f Func) Valid() bool {
	return f > Invalid && int(f) < len(funcNames)
}

func (f Func) Squared() bool {
	return f >= Sin2 && f <= Csc2
}

func (f Func) String() string {
	if !f.Valid() {
		return "<invalid>"
	}
	return funcNames[f]
}

// Text is the function applied to x as it appears in expressions.
func (f Func) Text() string {
	return f.String() + "(x)"
}

type Term struct {
	Coefficient int
	Func        Func
}

func (t Term) String() string {
	return format.Coefficient(t.Coefficient, t.Func.Text())
}
