package bignum

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Line-oriented I/O contracts: one value per line. Descriptor validity,
// buffering policy and read chunking are the caller's concern; these
// functions only define what a line means.

// ReadValue reads one line from r and parses it as an Int in the given
// base (0 = auto-detect). io.EOF is passed through when no line is
// available; a line that fails to parse yields a ParseError.
func ReadValue(r *bufio.Reader, base int) (*Int, error) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return nil, err
	}
	return Parse(strings.TrimSuffix(line, "\n"), base)
}

// WriteValue writes x in the given base followed by a newline.
func WriteValue(w io.Writer, x *Int, base int) error {
	s, err := x.Text(base)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}
