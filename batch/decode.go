package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	sax "github.com/midbel/codecs/xml"
	"github.com/midbel/trigint/config"
	"github.com/midbel/trigint/csv"
)

type Source struct {
	Line int
	Name string
	Expr string
}

type Decoder interface {
	Decode() (Source, error)
}

func NewDecoder(kind string, r io.Reader) (Decoder, error) {
	switch kind {
	case config.InputLines, "":
		return DecodeLines(r), nil
	case config.InputCSV:
		return DecodeCSV(r), nil
	case config.InputXML:
		return DecodeXML(r), nil
	default:
		return nil, fmt.Errorf("%s: unsupported input format", kind)
	}
}

type lineDecoder struct {
	scan *bufio.Scanner
	line int
}

// DecodeLines reads one expression per line. Blank lines and lines starting
// with # are skipped.
func DecodeLines(r io.Reader) Decoder {
	return &lineDecoder{
		scan: bufio.NewScanner(r),
	}
}

func (d *lineDecoder) Decode() (Source, error) {
	for d.scan.Scan() {
		d.line++
		str := strings.TrimSpace(d.scan.Text())
		if str == "" || strings.HasPrefix(str, "#") {
			continue
		}
		src := Source{
			Line: d.line,
			Expr: str,
		}
		return src, nil
	}
	if err := d.scan.Err(); err != nil {
		return Source{}, err
	}
	return Source{}, io.EOF
}

type csvDecoder struct {
	reader *csv.Reader
}

// DecodeCSV reads the expression from the first column and an optional
// name from the second one.
func DecodeCSV(r io.Reader) Decoder {
	rs := csv.NewReader(r)
	rs.TrimSpace = true
	return &csvDecoder{
		reader: rs,
	}
}

func (d *csvDecoder) Decode() (Source, error) {
	row, err := d.reader.Read()
	if err != nil {
		return Source{}, err
	}
	src := Source{
		Line: d.reader.Line(),
		Expr: row[0],
	}
	if len(row) > 1 {
		src.Name = row[1]
	}
	return src, nil
}

type xmlDecoder struct {
	reader  io.Reader
	sources []Source
	loaded  bool

	count int
	curr  Source
	text  strings.Builder
}

// DecodeXML reads the text of every integral element, the id attribute being
// used as the name of the expression. Line is the position of the element in
// the document. Empty elements give an empty expression.
//
//	<integrals>
//	  <integral id="first">9sin(x) - cos(x)</integral>
//	</integrals>
func DecodeXML(r io.Reader) Decoder {
	return &xmlDecoder{
		reader: r,
	}
}

func (d *xmlDecoder) Decode() (Source, error) {
	if !d.loaded {
		d.loaded = true
		if err := d.load(); err != nil {
			return Source{}, err
		}
	}
	if len(d.sources) == 0 {
		return Source{}, io.EOF
	}
	src := d.sources[0]
	d.sources = d.sources[1:]
	return src, nil
}

func (d *xmlDecoder) load() error {
	var (
		rs   = sax.NewReader(d.reader)
		name = sax.LocalName("integral")
	)
	rs.OnOpen(name, d.openIntegral)
	rs.OnClose(name, d.closeIntegral)
	return rs.Start()
}

func (d *xmlDecoder) openIntegral(rs *sax.Reader, el sax.E) error {
	d.count++
	d.curr = Source{
		Line: d.count,
		Name: el.GetAttributeValue("id"),
	}
	d.text.Reset()

	rs.Push()
	rs.OnText(func(_ *sax.Reader, str string) error {
		d.text.WriteString(str)
		return nil
	})
	return nil
}

func (d *xmlDecoder) closeIntegral(rs *sax.Reader, _ sax.E) error {
	rs.Pop()
	d.curr.Expr = strings.TrimSpace(d.text.String())
	d.sources = append(d.sources, d.curr)
	return nil
}
