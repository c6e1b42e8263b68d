// Package adapter contains the I/O collaborators the extraction driver
// depends on: input opening with a stdin sentinel, optional charset
// transcoding, and delimited record reading and writing. Keeping these
// behind small interfaces lets the driver run against in-memory streams
// in tests.
package adapter

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// StdinName is the file argument that selects standard input.
const StdinName = "-"

// InputOpener opens one input by name. Implementations decide what a name
// means; the driver only iterates and reads.
type InputOpener interface {
	Open(name string) (io.ReadCloser, error)
}

// LocalInputOpener opens real files and maps StdinName to the process's
// standard input. With a decoding configured, every opened stream is
// transcoded to UTF-8 on the fly.
type LocalInputOpener struct {
	decoding encoding.Encoding // nil reads raw bytes
}

// NewLocalInputOpener constructs an opener that reads raw bytes.
func NewLocalInputOpener() *LocalInputOpener {
	return &LocalInputOpener{}
}

// NewTranscodingInputOpener constructs an opener that transcodes every
// input from the named IANA charset to UTF-8. An empty name yields a raw
// opener; a name the registry cannot resolve is a configuration error.
func NewTranscodingInputOpener(charset string) (*LocalInputOpener, error) {
	if charset == "" {
		return NewLocalInputOpener(), nil
	}

	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported input encoding %q", charset)
	}

	return &LocalInputOpener{decoding: enc}, nil
}

// Open returns a reader for name. Standard input is handed out behind a
// no-op closer so it stays usable when "-" appears more than once in the
// file list.
func (o *LocalInputOpener) Open(name string) (io.ReadCloser, error) {
	if name == StdinName {
		return o.wrap(io.NopCloser(os.Stdin)), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return o.wrap(f), nil
}

func (o *LocalInputOpener) wrap(rc io.ReadCloser) io.ReadCloser {
	if o.decoding == nil {
		return rc
	}

	return &transcodingReader{
		Reader: o.decoding.NewDecoder().Reader(rc),
		closer: rc,
	}
}

// transcodingReader reads through the charset transformer while Close
// still reaches the underlying stream.
type transcodingReader struct {
	io.Reader
	closer io.Closer
}

func (t *transcodingReader) Close() error {
	return t.closer.Close()
}
