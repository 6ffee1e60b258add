package csv

import (
	"errors"
)

const (
	quote   = '"'
	nl      = '\n'
	cr      = '\r'
	space   = ' '
	comment = '#'
)

var errUnterminated = errors.New("unterminated")
