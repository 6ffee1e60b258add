package integral

import (
	"errors"
	"strings"
	"testing"

	"github.com/midbel/trigint/format"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		Input string
		Want  string
	}{
		{
			Input: "sin(x)",
			Want:  "-cos(x) + C",
		},
		{
			Input: "9sin(x)-cos(x)",
			Want:  "-9cos(x) - sin(x) + C",
		},
		{
			Input: "3tan(x)+2sec^2(x)",
			Want:  "-3ln|cos(x)| + 2tan(x) + C",
		},
		{
			Input: "--sin(x)",
			Want:  "-cos(x) + C",
		},
		{
			Input: "-sin(x)",
			Want:  "cos(x) + C",
		},
		{
			Input: "0sin(x)",
			Want:  "0 + C",
		},
		{
			Input: "0sin(x) - 0tan^2(x)",
			Want:  "0 + C",
		},
		{
			Input: "0sin(x) + 4cos(x)",
			Want:  "4sin(x) + C",
		},
		{
			Input: "cot(x) - sec(x)",
			Want:  "ln|sin(x)| - ln|sec(x) + tan(x)| + C",
		},
		{
			Input: "2csc(x)",
			Want:  "-2ln|csc(x) + cot(x)| + C",
		},
		{
			Input: "csc^2(x) - cos(x)",
			Want:  "-cot(x) - sin(x) + C",
		},
		{
			Input: "sin^2(x)",
			Want:  "x/2 - sin(2x)/4 + C",
		},
		{
			Input: "-sin^2(x)",
			Want:  "-(x/2 - sin(2x)/4) + C",
		},
		{
			Input: "4cos^2(x)",
			Want:  "4(x/2 + sin(2x)/4) + C",
		},
		{
			Input: "tan^2(x) + sin(x)",
			Want:  "(tan(x) - x) - cos(x) + C",
		},
		{
			Input: "sin(x) - 2cot^2(x)",
			Want:  "-cos(x) - 2(-cot(x) - x) + C",
		},
		{
			Input: "-9223372036854775808cos(x)",
			Want:  "-9223372036854775808sin(x) + C",
		},
		{
			Input: "sin(x) - 9223372036854775808sec^2(x)",
			Want:  "-cos(x) - 9223372036854775808tan(x) + C",
		},
	}
	for _, c := range tests {
		res, err := Calculate(c.Input)
		if err != nil {
			t.Errorf("%s: fail to integrate expression: %s", c.Input, err)
			continue
		}
		got := res.String()
		if got != c.Want {
			t.Errorf("%s: results mismatched! want %s - got %s", c.Input, c.Want, got)
		}
	}
}

func TestCalculateOutOfRange(t *testing.T) {
	tests := []string{
		"-9223372036854775808sin(x)",
		"cos(x) - 9223372036854775808tan(x)",
	}
	for _, str := range tests {
		_, err := Calculate(str)
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: expected malformed expression error, got %v", str, err)
		}
	}
}

func TestCalculateUnicode(t *testing.T) {
	res, err := Calculate("sin(x)")
	if err != nil {
		t.Fatalf("fail to integrate expression: %s", err)
	}
	want := "−cos(x) + C"
	if got := res.Format(format.Unicode()); got != want {
		t.Errorf("results mismatched! want %s - got %s", want, got)
	}
}

func TestExpr(t *testing.T) {
	tests := []struct {
		Input string
		Want  string
	}{
		{
			Input: "9 sin(x) +- cos(x)",
			Want:  "9sin(x) - cos(x)",
		},
		{
			Input: "-2sec^2(x)+0tan(x)",
			Want:  "-2sec²(x) + 0",
		},
	}
	for _, c := range tests {
		res, err := Calculate(c.Input)
		if err != nil {
			t.Errorf("%s: fail to integrate expression: %s", c.Input, err)
			continue
		}
		if got := res.Expr(); got != c.Want {
			t.Errorf("%s: results mismatched! want %s - got %s", c.Input, c.Want, got)
		}
	}
}

func TestExplain(t *testing.T) {
	tests := []struct {
		Input string
		Want  []string
	}{
		{
			Input: "sin(x)",
			Want: []string{
				"∫ sin(x) dx = -cos(x) + C",
				"  because d/dx [cos(x)] = -sin(x)",
			},
		},
		{
			Input: "9sin(x)-cos(x)",
			Want: []string{
				"∫ 9sin(x) dx = -9cos(x)",
				"  because d/dx [cos(x)] = -sin(x)",
				"∫ -cos(x) dx = -sin(x)",
				"  because d/dx [sin(x)] = cos(x)",
				"∫ (9sin(x) - cos(x)) dx = -9cos(x) - sin(x) + C",
			},
		},
		{
			Input: "2sin^2(x)+0cos(x)",
			Want: []string{
				"∫ 2sin²(x) dx = 2(x/2 - sin(2x)/4)",
				"  because sin²(x) = (1 - cos(2x))/2",
				"∫ 0 dx = 0",
				"  because d/dx [sin(x)] = cos(x)",
				"∫ (2sin²(x) + 0) dx = 2(x/2 - sin(2x)/4) + C",
			},
		},
	}
	for _, c := range tests {
		res, err := Calculate(c.Input)
		if err != nil {
			t.Errorf("%s: fail to integrate expression: %s", c.Input, err)
			continue
		}
		got := strings.Split(res.Explain(format.Default()), "\n")
		if len(got) != len(c.Want) {
			t.Errorf("%s: number of lines mismatched! want %d - got %d", c.Input, len(c.Want), len(got))
			continue
		}
		for i := range c.Want {
			if got[i] != c.Want[i] {
				t.Errorf("%s: line %d mismatched! want %s - got %s", c.Input, i+1, c.Want[i], got[i])
			}
		}
	}
}

func TestRules(t *testing.T) {
	list := Rules()
	if len(list) != len(Funcs()) {
		t.Fatalf("number of rules mismatched! want %d - got %d", len(Funcs()), len(list))
	}
	for i, f := range Funcs() {
		if list[i].Func != f {
			t.Errorf("rule %d: function mismatched! want %s - got %s", i, f, list[i].Func)
		}
		if list[i].Integral == "" || list[i].Because == "" {
			t.Errorf("%s: incomplete rule", f)
		}
		if list[i].Negate && list[i].Compound {
			t.Errorf("%s: compound rule should carry its own sign", f)
		}
	}
	if _, err := Lookup(Invalid); err == nil {
		t.Errorf("lookup of invalid function should fail")
	}
}

func TestRuleString(t *testing.T) {
	r, err := Lookup(Sin)
	if err != nil {
		t.Fatalf("fail to lookup rule: %s", err)
	}
	want := "∫ sin(x) dx = -cos(x) + C\n\nBecause d/dx [cos(x)] = -sin(x)"
	if got := r.String(); got != want {
		t.Errorf("results mismatched! want %s - got %s", want, got)
	}
}
