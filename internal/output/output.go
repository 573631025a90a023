package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatYAML, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (want yaml or json)", s)
	}
}

// WindowRow is one line of the `list` command: a window and the border
// decision made for it.
type WindowRow struct {
	Handle   string `yaml:"hwnd"               json:"hwnd"`
	Title    string `yaml:"title,omitempty"    json:"title,omitempty"`
	Class    string `yaml:"class"              json:"class"`
	PID      uint32 `yaml:"pid,omitempty"      json:"pid,omitempty"`
	Active   bool   `yaml:"active"             json:"active"`
	Rule     int    `yaml:"rule"               json:"rule"`
	ActiveC  string `yaml:"active_color"       json:"active_color"`
	Inactive string `yaml:"inactive_color"     json:"inactive_color"`
	Paint    string `yaml:"paint"              json:"paint"`
}

// ListResult is the top-level output of the `list` command.
type ListResult struct {
	Foreground string      `yaml:"foreground,omitempty" json:"foreground,omitempty"`
	Rainbow    bool        `yaml:"rainbow"              json:"rainbow"`
	Windows    []WindowRow `yaml:"windows"              json:"windows"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	return Fprint(os.Stdout, v)
}

// Fprint serializes v to w in the current output format.
func Fprint(w io.Writer, v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		return writeJSON(w, v, PrettyOutput)
	case FormatYAML:
		return writeYAML(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	return writeJSON(os.Stdout, v, false)
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	return writeJSON(os.Stdout, v, true)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	return writeYAML(os.Stdout, v)
}

func writeJSON(w io.Writer, v interface{}, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
