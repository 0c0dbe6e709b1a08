// Package report writes generated arrangements as JSON lines or CSV records
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type countRecord struct {
	Count int `json:"count"`
}

type arrangementRecord struct {
	Sequence int   `json:"sequence"`
	Indices  []int `json:"indices"`
}

type encoder interface {
	start(count int) error
	next(indices []int, sequence int) error
	flush() error
}

// Writer is an arrangement.SampleListener that writes every arrangement it receives.
// It stops the generator after limit arrangements (when limit > 0) or on the first write error
type Writer struct {
	encoder encoder
	limit   int
	count   int
	written int
	err     error
}

// NewWriter accepts the formats "json" and "csv"
func NewWriter(format string, out io.Writer, limit int) (*Writer, error) {
	var encoder encoder
	switch strings.ToLower(format) {
	case "json":
		encoder = &jsonEncoder{encoder: json.NewEncoder(out)}
	case "csv":
		encoder = &csvEncoder{writer: csv.NewWriter(out)}
	default:
		return nil, fmt.Errorf("%v is not a valid format", format)
	}
	return &Writer{encoder: encoder, limit: limit}, nil
}

func (writer *Writer) Start(count int) {
	writer.count = count
	writer.err = writer.encoder.start(count)
}

func (writer *Writer) Next(indices []int, sequence int) bool {
	if writer.err != nil {
		return true
	}
	if writer.err = writer.encoder.next(indices, sequence); writer.err != nil {
		return true
	}
	writer.written++
	return writer.limit > 0 && writer.written >= writer.limit
}

// Close flushes buffered records and returns the first error that occurred while writing
func (writer *Writer) Close() error {
	if err := writer.encoder.flush(); err != nil && writer.err == nil {
		writer.err = err
	}
	return writer.err
}

// Count returns the count announced by the generator
func (writer *Writer) Count() int {
	return writer.count
}

func (writer *Writer) Written() int {
	return writer.written
}

type jsonEncoder struct {
	encoder *json.Encoder
}

func (e *jsonEncoder) start(count int) error {
	return e.encoder.Encode(countRecord{Count: count})
}

func (e *jsonEncoder) next(indices []int, sequence int) error {
	return e.encoder.Encode(arrangementRecord{Sequence: sequence, Indices: indices})
}

func (e *jsonEncoder) flush() error {
	return nil
}

// csvEncoder writes a header on the first arrangement, since its width depends on the sample size
type csvEncoder struct {
	writer        *csv.Writer
	headerWritten bool
}

func (e *csvEncoder) start(int) error {
	return nil
}

func (e *csvEncoder) next(indices []int, sequence int) error {
	if !e.headerWritten {
		header := append([]string{"sequence"}, lo.Map(indices, func(_ int, i int) string {
			return fmt.Sprintf("index%d", i+1)
		})...)
		if err := e.writer.Write(header); err != nil {
			return err
		}
		e.headerWritten = true
	}

	record := append([]string{strconv.Itoa(sequence)}, lo.Map(indices, func(index int, _ int) string {
		return strconv.Itoa(index)
	})...)
	return e.writer.Write(record)
}

func (e *csvEncoder) flush() error {
	e.writer.Flush()
	return e.writer.Error()
}
