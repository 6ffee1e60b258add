package integral

import (
	"fmt"
	"strings"
)

// Rule is the tabulated integral of one function with a unit coefficient.
// Integral holds the antiderivative before Negate is applied; Compound marks
// antiderivatives made of several tokens that need grouping once scaled.
type Rule struct {
	Func     Func
	Integral string
	Negate   bool
	Compound bool
	Because  string
}

var rules = [...]Rule{
	Sin: {
		Func:     Sin,
		Integral: "cos(x)",
		Negate:   true,
		Because:  "d/dx [cos(x)] = -sin(x)",
	},
	Cos: {
		Func:     Cos,
		Integral: "sin(x)",
		Because:  "d/dx [sin(x)] = cos(x)",
	},
	Tan: {
		Func:     Tan,
		Integral: "ln|cos(x)|",
		Negate:   true,
		Because:  "d/dx [ln|cos(x)|] = -tan(x)",
	},
	Cot: {
		Func:     Cot,
		Integral: "ln|sin(x)|",
		Because:  "d/dx [ln|sin(x)|] = cot(x)",
	},
	Sec: {
		Func:     Sec,
		Integral: "ln|sec(x) + tan(x)|",
		Because:  "d/dx [ln|sec(x) + tan(x)|] = sec(x)",
	},
	Csc: {
		Func:     Csc,
		Integral: "ln|csc(x) + cot(x)|",
		Negate:   true,
		Because:  "d/dx [ln|csc(x) + cot(x)|] = -csc(x)",
	},
	Sin2: {
		Func:     Sin2,
		Integral: "x/2 - sin(2x)/4",
		Compound: true,
		Because:  "sin²(x) = (1 - cos(2x))/2",
	},
	Cos2: {
		Func:     Cos2,
		Integral: "x/2 + sin(2x)/4",
		Compound: true,
		Because:  "cos²(x) = (1 + cos(2x))/2",
	},
	Tan2: {
		Func:     Tan2,
		Integral: "tan(x) - x",
		Compound: true,
		Because:  "tan²(x) = sec²(x) - 1",
	},
	Cot2: {
		Func:     Cot2,
		Integral: "-cot(x) - x",
		Compound: true,
		Because:  "cot²(x) = csc²(x) - 1",
	},
	Sec2: {
		Func:     Sec2,
		Integral: "tan(x)",
		Because:  "d/dx [tan(x)] = sec²(x)",
	},
	Csc2: {
		Func:     Csc2,
		Integral: "cot(x)",
		Negate:   true,
		Because:  "d/dx [cot(x)] = -csc²(x)",
	},
}

func Lookup(f Func) (Rule, error) {
	if !f.Valid() {
		return Rule{}, fmt.Errorf("%w: %d: no integration rule", ErrMalformed, f)
	}
	return rules[f], nil
}

func Rules() []Rule {
	var list []Rule
	for _, f := range Funcs() {
		list = append(list, rules[f])
	}
	return list
}

// Apply gives the coefficient of the antiderivative for a term scaled by c.
func (r Rule) Apply(c int) int {
	if r.Negate {
		return -c
	}
	return c
}

func (r Rule) Antiderivative() string {
	if r.Negate {
		return "-" + r.Integral
	}
	return r.Integral
}

func (r Rule) String() string {
	var str strings.Builder
	fmt.Fprintf(&str, "∫ %s dx = %s + C", r.Func.Text(), r.Antiderivative())
	str.WriteString("\n\n")
	fmt.Fprintf(&str, "Because %s", r.Because)
	return str.String()
}
