package dataset

import (
	"bytes"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

type Field struct {
	Name  string
	Value any
}

// Row is one record of a table. Fields keep the column order of the header
// and are encoded as a JSON object in that same order.
type Row []Field

// ResultSet is the list of rows returned to the caller, in file order.
type ResultSet []Row

func (r Row) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

func (r Row) Columns() []string {
	columns := make([]string, len(r))
	for i, f := range r {
		columns[i] = f.Name
	}
	return columns
}

func (r Row) MarshalJSONTo(enc *jsontext.Encoder) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	for _, f := range r {
		if err := enc.WriteToken(jsontext.String(f.Name)); err != nil {
			return err
		}
		if err := json.MarshalEncode(enc, f.Value); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndObject)
}

// MarshalJSON is used by encoding/json (box serializes responses with it).
func (r Row) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	err := r.MarshalJSONTo(jsontext.NewEncoder(buf))
	if err != nil {
		return nil, err
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}

// ErrorRecord is a single row result set holding only an "error" message.
func ErrorRecord(message string) ResultSet {
	return ResultSet{
		{{Name: "error", Value: message}},
	}
}

