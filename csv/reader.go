package csv

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Reader reads comma separated records. Lines starting with Comment are
// skipped as well as empty lines.
type Reader struct {
	inner     *bufio.Reader
	Comma     byte
	Comment   byte
	TrimSpace bool

	line  int
	atEOF bool
}

func NewReader(r io.Reader) *Reader {
	rs := Reader{
		inner:   bufio.NewReader(r),
		Comma:   ',',
		Comment: comment,
	}
	return &rs
}

// Line gives the number of the last line read.
func (r *Reader) Line() int {
	return r.line
}

func (r *Reader) Done() bool {
	return r.atEOF
}

func (r *Reader) Read() ([]string, error) {
	for {
		line, err := r.readLine()
		if err != nil {
			return nil, err
		}
		if r.skip(line) {
			continue
		}
		return r.parseLine(line)
	}
}

func (r *Reader) skip(line []byte) bool {
	line = bytes.TrimRight(line, "\r\n")
	if len(bytes.TrimSpace(line)) == 0 {
		return true
	}
	return r.Comment != 0 && line[0] == r.Comment
}

func (r *Reader) readLine() ([]byte, error) {
	if r.Done() {
		return nil, io.EOF
	}
	line, err := r.inner.ReadBytes(nl)
	if len(line) == 0 && errors.Is(err, io.EOF) {
		r.atEOF = true
		return nil, err
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	r.line++
	return line, nil
}

func (r *Reader) parseLine(line []byte) ([]string, error) {
	var res []string
	for i := 0; i < len(line); {
		var (
			field []byte
			size  int
			err   error
		)
		switch line[i] {
		case cr, nl:
			res = append(res, "")
			return res, nil
		case quote:
			for {
				field, size, err = r.readQuotedField(line[i:])
				if !errors.Is(err, errUnterminated) {
					break
				}
				next, err1 := r.readLine()
				if err1 != nil {
					return nil, fmt.Errorf("line %d: %w quoted field", r.line, err)
				}
				line = append(line, next...)
			}
		default:
			field, size, err = r.readDefaultField(line[i:])
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", r.line, err)
		}
		if r.TrimSpace {
			field = bytes.TrimSpace(field)
		}
		res = append(res, string(field))

		i += size
		if i >= len(line) || line[i] == cr || line[i] == nl {
			return res, nil
		}
		if line[i] != r.Comma {
			return nil, fmt.Errorf("line %d: unexpected character after field", r.line)
		}
		i++
		if i >= len(line) {
			res = append(res, "")
		}
	}
	return res, nil
}

func (r *Reader) readQuotedField(line []byte) ([]byte, int, error) {
	var (
		field  []byte
		offset = 1
	)
	for offset < len(line) {
		if line[offset] == quote {
			if offset+1 < len(line) && line[offset+1] == quote {
				field = append(field, quote)
				offset += 2
				continue
			}
			return field, offset + 1, nil
		}
		field = append(field, line[offset])
		offset++
	}
	return nil, 0, errUnterminated
}

func (r *Reader) readDefaultField(line []byte) ([]byte, int, error) {
	var offset int
	for offset < len(line) {
		switch line[offset] {
		case quote:
			return nil, 0, fmt.Errorf("unexpected quote")
		case r.Comma, cr, nl:
			return line[:offset], offset, nil
		default:
			offset++
		}
	}
	return line[:offset], offset, nil
}
