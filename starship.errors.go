package starship

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/itsatony/go-cuserr"

	"github.com/alexmaco/starship/internal"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Parse errors
	ErrMsgParseFailed       = "format parsing failed"
	ErrMsgInvalidEscape     = "invalid escape sequence"
	ErrMsgEmptyVariable     = "empty variable reference"
	ErrMsgUnterminatedGroup = "unterminated display span"
	ErrMsgUnterminatedStyle = "unterminated style span"
	ErrMsgMissingStyle      = "display span without style span"
	ErrMsgFallbackFailed    = "fallback format failed to parse"

	// Evaluation errors
	ErrMsgRenderFailed       = "format rendering failed"
	ErrMsgValueResolveFailed = "value resolution failed"
	ErrMsgStyleResolveFailed = "style resolution failed"

	// Style spec errors
	ErrMsgUnknownStyleKeyword = "unknown style keyword"
	ErrMsgInvalidStyleColor   = "invalid style color"

	// Module errors
	ErrMsgModuleDisabled = "module is disabled"
	ErrMsgCommandFailed  = "command execution failed"
	ErrMsgVersionEmpty   = "version string is empty"

	// Config errors
	ErrMsgConfigLoadFailed = "configuration could not be loaded"
	ErrMsgUnknownPreset    = "unknown preset"
)

// Position represents a location in the source format string
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// NewParseError creates a parse error with position context
func NewParseError(msg string, pos Position, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeParse, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeParse, msg)
	}
	return err.
		WithMetadata(MetaKeyCode, ErrCodeParse).
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
}

// NewEvalError creates an evaluation error with variable context
func NewEvalError(msg string, variable string, pos Position, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeEval, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeEval, msg)
	}
	return err.
		WithMetadata(MetaKeyCode, ErrCodeEval).
		WithMetadata(MetaKeyVariable, variable).
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column))
}

// NewStyleKeywordError creates an error for an unknown style keyword
func NewStyleKeywordError(keyword string) error {
	return cuserr.NewValidationError(ErrCodeStyle, ErrMsgUnknownStyleKeyword).
		WithMetadata(MetaKeyCode, ErrCodeStyle).
		WithMetadata(MetaKeyKeyword, keyword)
}

// NewStyleColorError creates an error for an invalid color token
func NewStyleColorError(value string) error {
	return cuserr.NewValidationError(ErrCodeStyle, ErrMsgInvalidStyleColor).
		WithMetadata(MetaKeyCode, ErrCodeStyle).
		WithMetadata(MetaKeyValue, value)
}

// NewCommandError creates an error for a failed subprocess invocation
func NewCommandError(command string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeExec, ErrMsgCommandFailed).
		WithMetadata(MetaKeyCode, ErrCodeExec).
		WithMetadata(MetaKeyCommand, command)
}

// NewConfigError creates a configuration loading error
func NewConfigError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgConfigLoadFailed).
		WithMetadata(MetaKeyCode, ErrCodeConfig)
}

// NewUnknownPresetError creates an error for an unknown preset name
func NewUnknownPresetError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyPreset, ErrMsgUnknownPreset).
		WithMetadata(MetaKeyCode, ErrCodeConfig).
		WithMetadata(MetaKeyPreset, name)
}

// NewFallbackError creates an error for a fallback format that also failed
func NewFallbackError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeParse, ErrMsgFallbackFailed).
		WithMetadata(MetaKeyCode, ErrCodeParse)
}

// IsParseError reports whether err originated from format parsing
func IsParseError(err error) bool {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return false
	}
	code, ok := customErr.GetMetadata(MetaKeyCode)
	return ok && code == ErrCodeParse
}

// wrapInternalParseError lifts a positioned internal lexer/parser error into
// the public error taxonomy.
func wrapInternalParseError(err error) error {
	var lexErr *internal.LexerError
	if errors.As(err, &lexErr) {
		return NewParseError(lexErr.Message, positionFromInternal(lexErr.Position), nil)
	}
	var parseErr *internal.ParserError
	if errors.As(err, &parseErr) {
		return NewParseError(parseErr.Message, positionFromInternal(parseErr.Position), nil)
	}
	return NewParseError(ErrMsgParseFailed, Position{Line: 1, Column: 1}, err)
}

// wrapInternalEvalError lifts an internal evaluation error into the public
// error taxonomy.
func wrapInternalEvalError(err error) error {
	var evalErr *internal.EvalError
	if errors.As(err, &evalErr) {
		return NewEvalError(evalErr.Message, evalErr.Variable, positionFromInternal(evalErr.Position), evalErr.Cause)
	}
	return NewEvalError(ErrMsgRenderFailed, "", Position{}, err)
}

// positionFromInternal converts an internal position to the public type
func positionFromInternal(pos internal.Position) Position {
	return Position{Offset: pos.Offset, Line: pos.Line, Column: pos.Column}
}
