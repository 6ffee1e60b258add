package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/midbel/trigint/config"
	"github.com/midbel/trigint/csv"
)

type Record struct {
	Source
	Result  string
	Explain string
	Err     error
}

func (r Record) Failed() bool {
	return r.Err != nil
}

type Encoder interface {
	Encode(Record) error
	Flush() error
}

func NewEncoder(cfg config.Config, w io.Writer) (Encoder, error) {
	switch cfg.Output {
	case config.OutputText, "":
		return EncodeText(w), nil
	case config.OutputCSV:
		return EncodeCSV(w, cfg.CSV), nil
	case config.OutputJSON:
		return EncodeJSON(w), nil
	default:
		return nil, fmt.Errorf("%s: unsupported output format", cfg.Output)
	}
}

type textEncoder struct {
	writer io.Writer
}

func EncodeText(w io.Writer) Encoder {
	return &textEncoder{
		writer: w,
	}
}

func (e *textEncoder) Encode(r Record) error {
	prefix := r.Expr
	if r.Name != "" {
		prefix = r.Name + ": " + prefix
	}
	var err error
	if r.Failed() {
		_, err = fmt.Fprintf(e.writer, "%s => error: %s\n", prefix, r.Err)
	} else {
		_, err = fmt.Fprintf(e.writer, "%s => %s\n", prefix, r.Result)
	}
	if err == nil && r.Explain != "" {
		_, err = fmt.Fprintf(e.writer, "%s\n\n", r.Explain)
	}
	return err
}

func (e *textEncoder) Flush() error {
	return nil
}

type csvEncoder struct {
	writer *csv.Writer
	header bool
}

// EncodeCSV writes a header followed by one row per record. Fields are
// quoted only when needed unless opts.Quote is set.
func EncodeCSV(w io.Writer, opts config.CSVOptions) Encoder {
	ws := csv.NewWriter(w)
	ws.ForceQuote = opts.Quote
	ws.UseCRLF = opts.CRLF
	return &csvEncoder{
		writer: ws,
	}
}

func (e *csvEncoder) Encode(r Record) error {
	if !e.header {
		e.header = true
		err := e.writer.Write([]string{"line", "name", "input", "result", "error"})
		if err != nil {
			return err
		}
	}
	var msg string
	if r.Failed() {
		msg = r.Err.Error()
	}
	return e.writer.Write([]string{
		strconv.Itoa(r.Line),
		r.Name,
		r.Expr,
		r.Result,
		msg,
	})
}

func (e *csvEncoder) Flush() error {
	return e.writer.Flush()
}

type jsonRecord struct {
	Line    int    `json:"line"`
	Name    string `json:"name,omitempty"`
	Input   string `json:"input"`
	Result  string `json:"result,omitempty"`
	Explain string `json:"explain,omitempty"`
	Error   string `json:"error,omitempty"`
}

type jsonEncoder struct {
	encoder *json.Encoder
}

// EncodeJSON writes one object per record and per line.
func EncodeJSON(w io.Writer) Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &jsonEncoder{
		encoder: enc,
	}
}

func (e *jsonEncoder) Encode(r Record) error {
	jr := jsonRecord{
		Line:    r.Line,
		Name:    r.Name,
		Input:   r.Expr,
		Result:  r.Result,
		Explain: r.Explain,
	}
	if r.Failed() {
		jr.Error = r.Err.Error()
	}
	return e.encoder.Encode(jr)
}

func (e *jsonEncoder) Flush() error {
	return nil
}
