package adapter

import (
	"encoding/csv"
	"io"

	m "github.com/carve-tools/carve/internal/model"
)

// RecordReader yields one parsed record per call and io.EOF once the
// input is drained.
type RecordReader interface {
	Read() (m.Record, error)
}

// RecordWriter serializes records. Output may be buffered; Flush pushes
// everything written so far to the underlying stream.
type RecordWriter interface {
	Write(m.Record) error
	Flush() error
}

// RecordIO builds delimiter-aware readers and writers over arbitrary
// streams. The driver asks for one reader and one writer per input file.
type RecordIO interface {
	NewReader(r io.Reader) RecordReader
	NewWriter(w io.Writer) RecordWriter
}

// CSVRecordIO implements RecordIO on encoding/csv with a single-byte
// delimiter, no header row, and no record-shape enforcement: ragged rows
// are normal input for field extraction, never an error.
type CSVRecordIO struct {
	delimiter byte
}

// NewCSVRecordIO builds record I/O for the given single-byte delimiter.
// encoding/csv is rune-based, so the delimiter must be ASCII: a byte
// above 0x7F would serialize back as a multi-byte UTF-8 sequence and no
// longer round-trip as a single byte.
func NewCSVRecordIO(delimiter byte) *CSVRecordIO {
	return &CSVRecordIO{delimiter: delimiter}
}

// NewReader returns a record reader over r.
func (c *CSVRecordIO) NewReader(r io.Reader) RecordReader {
	reader := csv.NewReader(r)
	reader.Comma = rune(c.delimiter)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return &csvRecordReader{reader: reader}
}

// NewWriter returns a record writer over w using the same delimiter.
func (c *CSVRecordIO) NewWriter(w io.Writer) RecordWriter {
	writer := csv.NewWriter(w)
	writer.Comma = rune(c.delimiter)

	return &csvRecordWriter{writer: writer}
}

type csvRecordReader struct {
	reader *csv.Reader
}

func (r *csvRecordReader) Read() (m.Record, error) {
	record, err := r.reader.Read()
	if err != nil {
		return nil, err
	}

	return m.Record(record), nil
}

type csvRecordWriter struct {
	writer *csv.Writer
}

func (w *csvRecordWriter) Write(record m.Record) error {
	return w.writer.Write(record)
}

func (w *csvRecordWriter) Flush() error {
	w.writer.Flush()

	return w.writer.Error()
}
