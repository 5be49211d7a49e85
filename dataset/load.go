// Package dataset reads tabular files (csv, tsv and xlsx) into rows ready to
// be served as JSON.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const (
	DefaultFilename = "MF_India_AI.csv"
	DefaultLimit    = 20
)

var ErrFileNotFound = errors.New("CSV file not found")
var ErrNoColumns = errors.New("No columns to parse from file")

// Load reads filename and returns its first limit rows. Missing cells are
// replaced by empty strings. The file is read on every call.
func Load(filename string, limit int) (ResultSet, error) {

	if _, err := os.Stat(filename); err != nil {
		return nil, ErrFileNotFound
	}

	t, err := readTable(filename)
	if err != nil {
		return nil, err
	}

	return t.head(limit), nil
}

func readTable(filename string) (*table, error) {

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return readWorkbook(filename)
	case ".tsv":
		return readDelimitedFile(filename, '\t')
	}

	return readDelimitedFile(filename, ',')
}

func readDelimitedFile(filename string, comma rune) (*table, error) {

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readDelimited(f, comma)
}

func readDelimited(r io.Reader, comma rune) (*table, error) {

	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1 // checked below against the header
	reader.LazyQuotes = true    // quotes only open a field at its start

	var header []string
	for header == nil {
		record, err := reader.Read()
		if err == io.EOF {
			return nil, ErrNoColumns
		}
		if err != nil {
			return nil, err
		}
		if isBlankLine(record) {
			continue
		}
		if err := checkEncoding(reader, record); err != nil {
			return nil, err
		}
		header = record
	}

	t := &table{
		columns: normalizeColumns(header),
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if isBlankLine(record) {
			continue
		}
		if len(record) > len(t.columns) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("Error tokenizing data. Expected %d fields in line %d, saw %d", len(t.columns), line, len(record))
		}
		if err := checkEncoding(reader, record); err != nil {
			return nil, err
		}
		t.records = append(t.records, record)
	}

	return t, nil
}

func checkEncoding(reader *csv.Reader, record []string) error {
	for i, cell := range record {
		if !utf8.ValidString(cell) {
			line, column := reader.FieldPos(i)
			return fmt.Errorf("invalid utf-8 sequence in line %d, column %d", line, column)
		}
	}
	return nil
}

// readWorkbook loads the first worksheet. Cells beyond the header width get
// unnamed columns instead of failing like delimited files do.
func readWorkbook(filename string) (*table, error) {

	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoColumns
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet '%s': %w", sheets[0], err)
	}

	var header []string
	records := [][]string{}
	width := 0
	for _, row := range rows {
		if isBlankRecord(row) {
			continue
		}
		if header == nil {
			header = row
			width = len(row)
			continue
		}
		width = max(width, len(row))
		records = append(records, row)
	}

	if header == nil {
		return nil, ErrNoColumns
	}

	for len(header) < width {
		header = append(header, "")
	}

	return &table{
		columns: normalizeColumns(header),
		records: records,
	}, nil
}
