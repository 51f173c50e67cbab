package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location with the text of that line, sans line ending.
type Line struct {
	Location
	Text string
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Text) }

// Input implements sequential line reading from a single named stream.
// The stream is decoded as UTF-8, dropping any leading byte order mark; a
// UTF-16 byte order mark switches decoding to UTF-16.
type Input struct {
	Name string
	Last Line

	src io.Reader
	br  *bufio.Reader
	err error
}

// New creates an Input reading from r. If r implements Name() string, that
// names the input, otherwise a placeholder derived from its type is used.
func New(r io.Reader) *Input {
	return &Input{
		Name: nameOf(r),
		src:  r,
		br:   bufio.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))),
	}
}

// Next advances to the next line, which is then available as Last.
// Returns false once the input is exhausted or a read error occurs; any
// non-EOF error is then available from Err.
func (in *Input) Next() bool {
	if in.err != nil {
		return false
	}
	s, err := in.br.ReadString('\n')
	if err != nil {
		in.err = err
		if s == "" {
			return false
		}
	}
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	in.Last = Line{
		Location: Location{Name: in.Name, Line: in.Last.Line + 1},
		Text:     s,
	}
	return true
}

// Err returns any read error other than io.EOF.
func (in *Input) Err() error {
	if in.err == io.EOF {
		return nil
	}
	return in.err
}

// Close closes the underlying stream if it is an io.Closer.
func (in *Input) Close() error {
	if cl, ok := in.src.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

// Named attaches a name to a reader, for inputs that have none of their own.
func Named(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
