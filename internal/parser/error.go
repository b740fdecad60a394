package parser

import (
	"fmt"

	"github.com/jsrewrite/jsrw/pkg/token"
)

// ParseError reports a single syntax error with the position it occurred at.
type ParseError struct {
	Message string
	Pos     token.Position
	Code    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// Error codes for programmatic dispatch by callers; internal/errdisplay
// shows the code in each error's header line.
const (
	ErrUnexpectedToken  = "E_UNEXPECTED_TOKEN"
	ErrNoPrefixParse    = "E_NO_PREFIX_PARSE"
	ErrExpectedIdent    = "E_EXPECTED_IDENT"
	ErrMissingSemicolon = "E_MISSING_SEMICOLON"
	ErrInvalidAssignTarget = "E_INVALID_ASSIGN_TARGET"
	ErrInvalidArrowParams  = "E_INVALID_ARROW_PARAMS"
	ErrInvalidNumber       = "E_INVALID_NUMBER"
)

func newParseError(pos token.Position, code, format string, args ...any) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...), Pos: pos, Code: code}
}

// ParseErrors collects every error recorded during a single Parse call.
type ParseErrors []*ParseError

func (es ParseErrors) Error() string {
	if len(es) == 1 {
		return es[0].Error()
	}
	msg := fmt.Sprintf("%d parse errors:", len(es))
	for _, e := range es {
		msg += "\n  " + e.Error()
	}
	return msg
}
