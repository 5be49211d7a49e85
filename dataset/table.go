package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Cells that are considered missing values.
var naValues = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

func isMissing(cell string) bool {
	return naValues[cell]
}

type kind int

const (
	kindText kind = iota
	kindInt
	kindFloat
	kindBool
)

type table struct {
	columns []string
	records [][]string
}

// normalizeColumns strips the byte order mark, names blank columns and
// de-duplicates repeated names as name, name.1, name.2...
func normalizeColumns(header []string) []string {

	columns := make([]string, len(header))
	used := map[string]bool{}
	next := map[string]int{}

	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		unique := name
		for used[unique] {
			next[name]++
			unique = fmt.Sprintf("%s.%d", name, next[name])
		}
		used[unique] = true
		columns[i] = unique
	}

	return columns
}

// isBlankLine reports a line holding nothing but whitespace. Lines with
// delimiters are rows of missing cells, not blank lines.
func isBlankLine(record []string) bool {
	return len(record) == 1 && strings.TrimSpace(record[0]) == ""
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func (t *table) cell(record []string, col int) string {
	if col >= len(record) {
		return ""
	}
	return record[col]
}

// inferKind looks at every record of a column, not only the ones that are
// going to be returned.
func (t *table) inferKind(col int) kind {

	present := 0
	missing := false
	allInt, allFloat, allBool := true, true, true

	for _, record := range t.records {
		cell := t.cell(record, col)
		if isMissing(cell) {
			missing = true
			continue
		}
		present++

		v := strings.TrimSpace(cell)
		if allInt {
			if _, err := strconv.ParseInt(v, 10, 64); err != nil {
				allInt = false
			}
		}
		if allFloat {
			allFloat = isDecimal(v)
		}
		if allBool {
			allBool = isBool(v)
		}
	}

	switch {
	case present == 0:
		return kindText
	case allInt && !missing:
		return kindInt
	case allInt || allFloat:
		return kindFloat
	case allBool:
		return kindBool
	}
	return kindText
}

// isDecimal accepts finite floats written in decimal notation. ParseFloat
// alone would also take Go literals like 1_000 or 0x1p4.
func isDecimal(v string) bool {
	if strings.Contains(v, "_") {
		return false
	}
	digits := strings.TrimLeft(v, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return false
	}
	f, err := strconv.ParseFloat(v, 64)
	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func isBool(v string) bool {
	switch v {
	case "True", "TRUE", "true", "False", "FALSE", "false":
		return true
	}
	return false
}

func convert(cell string, k kind) any {

	if isMissing(cell) {
		return ""
	}

	v := strings.TrimSpace(cell)
	switch k {
	case kindInt:
		i, _ := strconv.ParseInt(v, 10, 64)
		return i
	case kindFloat:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	case kindBool:
		return strings.EqualFold(v, "true")
	}

	return cell
}

// head returns the first limit records as rows with missing cells replaced
// by empty strings.
func (t *table) head(limit int) ResultSet {

	n := min(max(limit, 0), len(t.records))
	result := make(ResultSet, 0, n)
	if n == 0 {
		return result
	}

	kinds := make([]kind, len(t.columns))
	for col := range t.columns {
		kinds[col] = t.inferKind(col)
	}

	for _, record := range t.records[:n] {
		row := make(Row, len(t.columns))
		for col, name := range t.columns {
			row[col] = Field{
				Name:  name,
				Value: convert(t.cell(record, col), kinds[col]),
			}
		}
		result = append(result, row)
	}

	return result
}
