// Package format writes generated records as JSON, CSV, SQL or YAML.
package format

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pipseed/pipseed/internal/derrors"
	"github.com/pipseed/pipseed/internal/seed"
	"gopkg.in/yaml.v3"
)

// Format is an output format name.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	CSV  Format = "csv"
	SQL  Format = "sql"
	YAML Format = "yaml"
)

// All lists the supported formats.
var All = []Format{JSON, CSV, SQL, YAML}

// DefaultTable is the SQL table name used when none is given.
const DefaultTable = "data"

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Options tune the output.
type Options struct {
	Pretty bool   // indent JSON
	Table  string // SQL table name
}

// Parse resolves a format name, case-insensitively.
func Parse(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range All {
		if f == known {
			return f, nil
		}
	}
	return "", derrors.NewValidationError("format",
		fmt.Sprintf("unknown format %q (available formats: json, csv, sql, yaml)", name), nil)
}

// ValidateTable checks that name can be used unquoted as a SQL table name.
func ValidateTable(name string) error {
	if !tableNamePattern.MatchString(name) {
		return derrors.NewValidationError("table",
			fmt.Sprintf("invalid table name %q", name), nil)
	}
	return nil
}

// Render returns the records in the given format. CSV and SQL render
// nothing for an empty record list.
func Render(f Format, records []seed.Record, opts Options) (string, error) {
	switch f {
	case JSON:
		return renderJSON(records, opts.Pretty)
	case CSV:
		return renderCSV(records)
	case SQL:
		table := opts.Table
		if table == "" {
			table = DefaultTable
		}
		return renderSQL(records, table)
	case YAML:
		return renderYAML(records)
	default:
		return "", derrors.NewValidationError("format", fmt.Sprintf("unknown format %q", f), nil)
	}
}

// Write renders the records and writes them to w followed by a newline.
func Write(w io.Writer, f Format, records []seed.Record, opts Options) error {
	out, err := Render(f, records, opts)
	if err != nil {
		return err
	}
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if _, err := io.WriteString(w, out); err != nil {
		return derrors.NewOutputError("", "failed to write output", err)
	}
	return nil
}

func renderJSON(records []seed.Record, pretty bool) (string, error) {
	if records == nil {
		records = []seed.Record{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(records); err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func renderCSV(records []seed.Record) (string, error) {
	if len(records) == 0 {
		return "", nil
	}

	header := records[0].Keys()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, rec := range records {
		row := make([]string, len(header))
		for i, key := range header {
			v, _ := rec.Get(key)
			row[i] = csvValue(v)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to encode CSV: %w", err)
	}
	return buf.String(), nil
}

func renderSQL(records []seed.Record, table string) (string, error) {
	if len(records) == 0 {
		return "", nil
	}
	if err := ValidateTable(table); err != nil {
		return "", err
	}

	fields := records[0].Keys()
	columns := strings.Join(fields, ", ")
	statements := make([]string, 0, len(records))
	for _, rec := range records {
		values := make([]string, len(fields))
		for i, field := range fields {
			v, _ := rec.Get(field)
			values[i] = sqlValue(v)
		}
		statements = append(statements,
			fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);", table, columns, strings.Join(values, ", ")))
	}
	return strings.Join(statements, "\n"), nil
}

func renderYAML(records []seed.Record) (string, error) {
	if records == nil {
		records = []seed.Record{}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return "", fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func csvValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "True"
		}
		return "False"
	default:
		return fmt.Sprint(val)
	}
}

func sqlValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(val, "'", "''") + "'"
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
