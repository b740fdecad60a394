// Package errdisplay formats parser errors with source context, line/column
// information, and a caret pointing at the offending token.
package errdisplay

import (
	"fmt"
	"strings"

	"github.com/jsrewrite/jsrw/internal/parser"
)

// Formatter renders parser.ParseErrors against the source they came from.
type Formatter struct {
	Source string
	File   string
	Color  bool
}

// New builds a Formatter for source, optionally attributed to file (shown in
// the header when non-empty).
func New(source, file string) *Formatter {
	return &Formatter{Source: source, File: file}
}

// Format renders a single error.
func (f *Formatter) Format(e *parser.ParseError) string {
	var sb strings.Builder

	if f.File != "" {
		fmt.Fprintf(&sb, "error in %s:%d:%d: [%s]\n", f.File, e.Pos.Line, e.Pos.Column, e.Code)
	} else {
		fmt.Fprintf(&sb, "error at %d:%d: [%s]\n", e.Pos.Line, e.Pos.Column, e.Code)
	}

	if line := f.sourceLine(e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if f.Color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if f.Color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if f.Color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if f.Color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (f *Formatter) sourceLine(lineNum int) string {
	if f.Source == "" {
		return ""
	}
	lines := strings.Split(f.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders every error in errs, numbering them when there's more
// than one.
func (f *Formatter) FormatAll(errs parser.ParseErrors) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return f.Format(errs[0])
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "parsing failed with %d error(s):\n\n", len(errs))
	for i, e := range errs {
		fmt.Fprintf(&sb, "[%d/%d]\n", i+1, len(errs))
		sb.WriteString(f.Format(e))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
