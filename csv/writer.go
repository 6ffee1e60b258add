package csv

import (
	"bufio"
	"io"
	"strings"
)

type Writer struct {
	inner *bufio.Writer

	ForceQuote bool
	UseCRLF    bool
	Comma      byte
}

func NewWriter(w io.Writer) *Writer {
	ws := Writer{
		inner: bufio.NewWriter(w),
		Comma: ',',
	}
	return &ws
}

func (w *Writer) Write(line []string) error {
	for i, str := range line {
		if i > 0 {
			if err := w.inner.WriteByte(w.Comma); err != nil {
				return err
			}
		}
		var err error
		if w.needQuotes(str) {
			err = w.writeQuoted(str)
		} else {
			_, err = w.inner.WriteString(str)
		}
		if err != nil {
			return err
		}
	}
	return w.writeEol()
}

func (w *Writer) Flush() error {
	return w.inner.Flush()
}

func (w *Writer) writeEol() error {
	if w.UseCRLF {
		if err := w.inner.WriteByte(cr); err != nil {
			return err
		}
	}
	return w.inner.WriteByte(nl)
}

func (w *Writer) writeQuoted(str string) error {
	w.inner.WriteByte(quote)
	for i := 0; i < len(str); i++ {
		switch c := str[i]; c {
		case quote:
			w.inner.WriteByte(c)
			w.inner.WriteByte(c)
		case cr:
			if w.UseCRLF {
				w.inner.WriteByte(c)
			}
		case nl:
			if w.UseCRLF {
				w.inner.WriteByte(cr)
			}
			w.inner.WriteByte(c)
		default:
			w.inner.WriteByte(c)
		}
	}
	return w.inner.WriteByte(quote)
}

func (w *Writer) needQuotes(str string) bool {
	if w.ForceQuote {
		return true
	}
	if str == "" {
		return false
	}
	if str[0] == space || str[0] == comment {
		return true
	}
	for _, c := range []byte{w.Comma, quote, cr, nl, space} {
		if strings.IndexByte(str, c) >= 0 {
			return true
		}
	}
	return false
}
