// Package printer walks a pkg/ast tree and renders it back to JavaScript
// source text, in either a readable pretty form or a whitespace-stripped
// minified form. Parenthesization is driven entirely by ast.Expression's
// BindingPower, the same table the parser consults, so the two halves of
// the module can never disagree about precedence.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsrewrite/jsrw/pkg/ast"
	"github.com/jsrewrite/jsrw/pkg/token"
)

// InvariantError is panicked when the printer is asked to render a node
// shape its switch statements don't recognize — always a bug in the
// parser or in a transform pass, never a condition a caller should plan
// to recover from.
type InvariantError struct {
	Node    ast.Node
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("printer: %s (at %s)", e.Message, e.Node.Pos())
}

func invariant(n ast.Node, format string, args ...any) {
	panic(&InvariantError{Node: n, Message: fmt.Sprintf(format, args...)})
}

// Options configures a Printer.
type Options struct {
	// Minify strips insignificant whitespace and shortens a handful of
	// literals (true/false/undefined) at the cost of readability.
	Minify bool
	// IndentWidth is the number of spaces per nesting level in pretty mode.
	IndentWidth int
}

// Printer renders an *ast.Program to source text.
type Printer struct {
	opts    Options
	buf     strings.Builder
	indent  int
	lastCh  byte // last byte written, used to avoid gluing adjacent tokens
	hasLast bool
}

// New creates a Printer with opts applied; IndentWidth defaults to 2.
func New(opts Options) *Printer {
	if opts.IndentWidth == 0 {
		opts.IndentWidth = 2
	}
	return &Printer{opts: opts}
}

// Generate is a shorthand for New(Options{Minify: minify}).Print(program):
// render program as JavaScript, pretty or minified per minify, with the
// default indent width.
func Generate(program *ast.Program, minify bool) string {
	return New(Options{Minify: minify}).Print(program)
}

// Print renders program's statements, one per line in pretty mode.
func (p *Printer) Print(program *ast.Program) string {
	for i, stmt := range program.Body {
		if i > 0 {
			p.newline()
		}
		p.writeStatement(stmt)
	}
	return p.buf.String()
}

func (p *Printer) raw(s string) {
	if s == "" {
		return
	}
	p.buf.WriteString(s)
	p.lastCh = s[len(s)-1]
	p.hasLast = true
}

// word writes s, inserting a single space first if omitting it would glue
// s onto the previously written token (e.g. two adjacent '-' forming '--',
// or a keyword running into an identifier).
func (p *Printer) word(s string) {
	if p.hasLast && needsSeparator(p.lastCh, s) {
		p.buf.WriteByte(' ')
	}
	p.raw(s)
}

func needsSeparator(last byte, next string) bool {
	if next == "" {
		return false
	}
	first := next[0]
	if isIdentByte(last) && isIdentByte(first) {
		return true
	}
	if (last == '+' && first == '+') || (last == '-' && first == '-') {
		return true
	}
	return false
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func (p *Printer) space() {
	if !p.opts.Minify {
		p.raw(" ")
	}
}

func (p *Printer) newline() {
	if p.opts.Minify {
		return
	}
	p.raw("\n")
	p.raw(strings.Repeat(" ", p.indent*p.opts.IndentWidth))
}

func (p *Printer) indentIn()  { p.indent++ }
func (p *Printer) indentOut() { p.indent-- }

func (p *Printer) writeParamList(params []ast.Parameter) {
	p.raw("(")
	for i, param := range params {
		if i > 0 {
			p.raw(",")
			p.space()
		}
		p.raw(param.Name)
	}
	p.raw(")")
}

func (p *Printer) writeArgList(args []ast.Expression) {
	p.raw("(")
	for i, arg := range args {
		if i > 0 {
			p.raw(",")
			p.space()
		}
		p.writeExpr(arg)
	}
	p.raw(")")
}

// writeBody renders a function/method/class-body statement list braced and
// indented.
func (p *Printer) writeBody(body []ast.Statement) {
	p.raw("{")
	if len(body) == 0 {
		p.raw("}")
		return
	}
	p.indentIn()
	for _, stmt := range body {
		p.newline()
		p.writeStatement(stmt)
	}
	p.indentOut()
	p.newline()
	p.raw("}")
}

func formatIntegerLiteral(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func operatorText(op token.OperatorType) string {
	return op.String()
}
