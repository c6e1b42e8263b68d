package domain

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/carve-tools/carve/internal/adapter"
	m "github.com/carve-tools/carve/internal/model"
)

// Scanner sizing for line modes. Lines beyond maxLineBytes surface as a
// per-file error rather than silent truncation.
const (
	initialLineBytes = 64 * 1024
	maxLineBytes     = 1024 * 1024
)

// Driver walks the configured inputs strictly in order, applies the active
// extraction to every line or record, and writes each result immediately.
// A failure opening or reading one input is reported on the diagnostic
// stream and that input is skipped; the run continues with the next one.
// Only output-side failures end the run.
type Driver struct {
	opener  adapter.InputOpener
	records adapter.RecordIO
	out     io.Writer
	log     zerolog.Logger
}

// NewDriver wires a driver with its collaborators. The logger is the
// diagnostic stream; extraction results only ever go to out.
func NewDriver(opener adapter.InputOpener, records adapter.RecordIO, out io.Writer, log zerolog.Logger) *Driver {
	return &Driver{
		opener:  opener,
		records: records,
		out:     out,
		log:     log,
	}
}

// Run processes files in the given order, duplicates included, and returns
// one FileReport per input in the same order. The returned error is
// non-nil only when writing output failed; per-file input errors are
// recorded in the corresponding report instead.
func (d *Driver) Run(files []string, extract m.Extract) ([]m.FileReport, error) {
	reports := make([]m.FileReport, 0, len(files))

	for _, name := range files {
		report, err := d.processFile(name, extract)
		reports = append(reports, report)

		if err != nil {
			return reports, err
		}
	}

	return reports, nil
}

func (d *Driver) processFile(name string, extract m.Extract) (m.FileReport, error) {
	report := m.FileReport{File: name}

	in, err := d.opener.Open(name)
	if err != nil {
		d.log.Error().Err(err).Str("file", name).Msg("skipping input")
		report.Err = err

		return report, nil
	}
	defer in.Close()

	d.log.Debug().Str("file", name).Str("mode", string(extract.Mode)).Msg("processing input")

	var units int
	var inErr, outErr error

	switch extract.Mode {
	case m.ModeBytes:
		units, inErr, outErr = d.extractLines(in, extract.Selection, ExtractBytes)
	case m.ModeChars:
		units, inErr, outErr = d.extractLines(in, extract.Selection, ExtractChars)
	case m.ModeFields:
		units, inErr, outErr = d.extractRecords(in, extract.Selection)
	default:
		return report, fmt.Errorf("unknown extraction mode %q", extract.Mode)
	}

	report.Units = units

	if outErr != nil {
		return report, fmt.Errorf("write output: %w", outErr)
	}

	if inErr != nil {
		d.log.Error().Err(inErr).Str("file", name).Msg("skipping rest of input")
		report.Err = inErr
	}

	return report, nil
}

// extractLines applies a line extractor to each line of in, printing every
// result as its own newline-terminated line.
func (d *Driver) extractLines(in io.Reader, selection m.SelectionList, extract func(string, m.SelectionList) string) (lines int, inErr, outErr error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, initialLineBytes), maxLineBytes)

	for scanner.Scan() {
		if _, err := fmt.Fprintln(d.out, extract(scanner.Text(), selection)); err != nil {
			return lines, nil, err
		}

		lines++
	}

	return lines, scanner.Err(), nil
}

// extractRecords streams delimited records from in through ExtractFields
// and the record writer, one write per record.
func (d *Driver) extractRecords(in io.Reader, selection m.SelectionList) (count int, inErr, outErr error) {
	reader := d.records.NewReader(in)
	writer := d.records.NewWriter(d.out)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return count, err, writer.Flush()
		}

		if err := writer.Write(ExtractFields(record, selection)); err != nil {
			return count, nil, err
		}

		count++
	}

	return count, nil, writer.Flush()
}
