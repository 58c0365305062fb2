package report

import (
	"fmt"
	"io"
)

// Supported output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatSARIF = "sarif"
)

// Formats returns every supported format name.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatSARIF}
}

// Writer writes a complete report in a specific format.
type Writer interface {
	Write(w io.Writer, report *Report) error
}

// StreamWriter is a Writer that can emit each file as soon as it is
// inspected and close with a summary.
type StreamWriter interface {
	Writer
	WriteFile(w io.Writer, file File) error
	WriteSummary(w io.Writer, summary Summary) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string, plain bool) (Writer, error) {
	switch format {
	case FormatText:
		return NewTextWriter(plain), nil
	case FormatJSON:
		return &JSONWriter{}, nil
	case FormatSARIF:
		return &SARIFWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
