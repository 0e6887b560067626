// Package ingest reads employee rows from tabular sources.
package ingest

import (
	"encoding/csv"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"SlotDB/record"
)

// LoadCSV reads rows of layout named by a header line (NAME,SSN,...).
// Header names are matched case-insensitively; unknown columns are ignored
// and missing ones are left empty, except keyField which must be present.
func LoadCSV(path string, layout *record.Layout, keyField string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	return ReadCSV(f, layout, keyField)
}

// ReadCSV is LoadCSV over an open reader.
func ReadCSV(r io.Reader, layout *record.Layout, keyField string) ([]record.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	// columns[i] is the declared layout name of header i, "" when unknown
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = fieldName(layout, strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	}
	if keyField == "" || !slices.Contains(columns, keyField) {
		return nil, errors.Errorf("header has no %s column", keyField)
	}

	var out []record.Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		values := make(map[string]string, len(row))
		for i, v := range row {
			if i < len(columns) && columns[i] != "" {
				values[columns[i]] = strings.TrimSpace(v)
			}
		}
		out = append(out, layout.New(values))
	}
}

func fieldName(layout *record.Layout, header string) string {
	for _, f := range layout.Fields() {
		if strings.EqualFold(f.Name, header) {
			return f.Name
		}
	}
	return ""
}
