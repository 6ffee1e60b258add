package csv

import (
	"errors"
	"io"
	"slices"
	"strings"
	"testing"
)

func TestReader(t *testing.T) {
	const str = `# expressions
sin(x),first
"9sin(x) - cos(x)","with ""quotes"""

3tan(x)+2sec^2(x),
"multi
line",last
`
	want := [][]string{
		{"sin(x)", "first"},
		{"9sin(x) - cos(x)", `with "quotes"`},
		{"3tan(x)+2sec^2(x)", ""},
		{"multi\nline", "last"},
	}
	rs := NewReader(strings.NewReader(str))
	for i := range want {
		got, err := rs.Read()
		if err != nil {
			t.Fatalf("record %d: fail to read: %s", i+1, err)
		}
		if !slices.Equal(got, want[i]) {
			t.Errorf("record %d: fields mismatched! want %q - got %q", i+1, want[i], got)
		}
	}
	if _, err := rs.Read(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF after last record, got %v", err)
	}
}

func TestReaderError(t *testing.T) {
	tests := []string{
		"sin(x),\"cos(x)\n",
		"sin\"(x)\n",
		"\"sin(x)\"cos(x)\n",
	}
	for _, str := range tests {
		rs := NewReader(strings.NewReader(str))
		if _, err := rs.Read(); err == nil {
			t.Errorf("%q: expected error but read succeeded", str)
		}
	}
}

func TestWriter(t *testing.T) {
	var (
		str strings.Builder
		ws  = NewWriter(&str)
	)
	data := [][]string{
		{"input", "result", "error"},
		{"sin(x)", "-cos(x) + C", ""},
		{"2sin(x)q", "", `malformed expression: invalid characters "q"`},
	}
	for _, d := range data {
		if err := ws.Write(d); err != nil {
			t.Fatalf("fail to write record: %s", err)
		}
	}
	if err := ws.Flush(); err != nil {
		t.Fatalf("fail to flush records: %s", err)
	}
	want := "input,result,error\n" +
		"sin(x),\"-cos(x) + C\",\n" +
		"2sin(x)q,,\"malformed expression: invalid characters \"\"q\"\"\"\n"
	if got := str.String(); got != want {
		t.Errorf("results mismatched! want %q - got %q", want, got)
	}
}

func TestWriterOptions(t *testing.T) {
	var (
		str strings.Builder
		ws  = NewWriter(&str)
	)
	ws.ForceQuote = true
	ws.UseCRLF = true
	if err := ws.Write([]string{"1", "", "multi\nline"}); err != nil {
		t.Fatalf("fail to write record: %s", err)
	}
	if err := ws.Flush(); err != nil {
		t.Fatalf("fail to flush record: %s", err)
	}
	want := "\"1\",\"\",\"multi\r\nline\"\r\n"
	if got := str.String(); got != want {
		t.Errorf("results mismatched! want %q - got %q", want, got)
	}
}
