package integral

import (
	"fmt"
	"math"
	"strings"

	"github.com/midbel/trigint/format"
)

const constant = " + C"

type Part struct {
	Term  Term
	Rule  Rule
	Coeff int
}

func (p Part) String() string {
	sum := format.Sum{KeepZero: true}
	sum.Add(p.Coeff, p.Rule.Integral, p.Rule.Compound)
	return sum.String()
}

type Result struct {
	Parts []Part
}

func Calculate(input string) (Result, error) {
	terms, err := Parse(input)
	if err != nil {
		return Result{}, err
	}
	return Integrate(terms)
}

func Integrate(terms []Term) (Result, error) {
	var res Result
	for _, t := range terms {
		r, err := Lookup(t.Func)
		if err != nil {
			return Result{}, err
		}
		if r.Negate && t.Coefficient == math.MinInt {
			return Result{}, fmt.Errorf("%w: %s: coefficient out of range", ErrMalformed, t)
		}
		p := Part{
			Term:  t,
			Rule:  r,
			Coeff: r.Apply(t.Coefficient),
		}
		res.Parts = append(res.Parts, p)
	}
	return res, nil
}

// Expr renders the parsed input in canonical form.
func (r Result) Expr() string {
	sum := format.Sum{KeepZero: true}
	for _, p := range r.Parts {
		sum.Add(p.Term.Coefficient, p.Term.Func.Text(), false)
	}
	return sum.String()
}

func (r Result) String() string {
	return r.Format(format.Default())
}

func (r Result) Format(style format.Style) string {
	return style.Render(r.antiderivative() + constant)
}

func (r Result) Explain(style format.Style) string {
	var str strings.Builder
	if len(r.Parts) == 1 {
		p := r.Parts[0]
		fmt.Fprintf(&str, "∫ %s dx = %s", p.Term, r.antiderivative()+constant)
		fmt.Fprintln(&str)
		fmt.Fprintf(&str, "  because %s", p.Rule.Because)
		return style.Render(str.String())
	}
	for _, p := range r.Parts {
		fmt.Fprintf(&str, "∫ %s dx = %s", p.Term, p)
		fmt.Fprintln(&str)
		fmt.Fprintf(&str, "  because %s", p.Rule.Because)
		fmt.Fprintln(&str)
	}
	fmt.Fprintf(&str, "∫ (%s) dx = %s", r.Expr(), r.antiderivative()+constant)
	return style.Render(str.String())
}

func (r Result) antiderivative() string {
	var sum format.Sum
	for _, p := range r.Parts {
		sum.Add(p.Coeff, p.Rule.Integral, p.Rule.Compound)
	}
	return sum.String()
}
