package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/termenv"
)

// Field is one key-value pair of a record, in display order.
type Field struct {
	Key   string
	Value any
}

// Record is an ordered set of fields. Order is preserved in every output
// mode, including JSON.
type Record []Field

// Get returns the string form of the named field, or "".
func (r Record) Get(key string) string {
	for _, f := range r {
		if f.Key == key {
			return fmt.Sprintf("%v", f.Value)
		}
	}
	return ""
}

// MarshalJSON emits the record as an object with fields in order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Column defines a column for list output.
type Column struct {
	Name  string // display name
	Key   string // record field key
	Width int    // truncation width for rich mode (0 = no limit)
}

// Formatter renders records for one of the output modes.
type Formatter interface {
	Print(record Record) error
	PrintList(columns []Column, rows []Record) error
	PrintError(err error)
	PrintHint(msg string)
}

// New creates a formatter for the given mode. Unknown modes fall back
// to plain.
func New(mode string) Formatter {
	switch mode {
	case "json":
		return &jsonFormatter{}
	case "rich":
		return &richFormatter{profile: termenv.ColorProfile()}
	default:
		return &plainFormatter{}
	}
}

// jsonFormatter writes records to stdout as indented JSON.
type jsonFormatter struct{}

func (f *jsonFormatter) Print(record Record) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(record)
}

func (f *jsonFormatter) PrintList(columns []Column, rows []Record) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"data":  rows,
		"count": len(rows),
	})
}

func (f *jsonFormatter) PrintError(err error) {
	enc := json.NewEncoder(os.Stderr)
	enc.SetIndent("", "  ")
	enc.Encode(map[string]string{"error": err.Error()})
}

func (f *jsonFormatter) PrintHint(msg string) {
	// Hints are prose for humans; JSON consumers don't get them.
}

// plainFormatter writes tab-separated values for piping.
type plainFormatter struct{}

func (f *plainFormatter) Print(record Record) error {
	for _, field := range record {
		fmt.Fprintf(os.Stdout, "%s\t%v\n", field.Key, field.Value)
	}
	return nil
}

func (f *plainFormatter) PrintList(columns []Column, rows []Record) error {
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Name
	}
	fmt.Fprintln(os.Stdout, strings.Join(headers, "\t"))

	for _, row := range rows {
		values := make([]string, len(columns))
		for i, col := range columns {
			values[i] = row.Get(col.Key)
		}
		fmt.Fprintln(os.Stdout, strings.Join(values, "\t"))
	}
	return nil
}

func (f *plainFormatter) PrintError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

func (f *plainFormatter) PrintHint(msg string) {
	fmt.Fprintf(os.Stderr, "hint: %v\n", msg)
}

// richFormatter writes styled output for a terminal.
type richFormatter struct {
	profile termenv.Profile
}

func (f *richFormatter) Print(record Record) error {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("15"))

	for _, field := range record {
		fmt.Fprintf(os.Stdout, "%s: %s\n",
			keyStyle.Render(field.Key),
			valueStyle.Render(fmt.Sprintf("%v", field.Value)),
		)
	}
	return nil
}

func (f *richFormatter) PrintList(columns []Column, rows []Record) error {
	RenderTable(os.Stdout, columns, rows)
	return nil
}

func (f *richFormatter) PrintError(err error) {
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	fmt.Fprintf(os.Stderr, "%s\n", style.Render("error: "+err.Error()))
}

func (f *richFormatter) PrintHint(msg string) {
	style := lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("8"))
	fmt.Fprintf(os.Stderr, "%s\n", style.Render("hint: "+msg))
}
