package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Lexer tokenizes a format string into a token stream.
//
// The format mini-language recognizes $name variable references, [ ] display
// span delimiters, ( ) style span delimiters, the $$ escape, and backslash
// escapes for the five special characters. Everything else is literal text.
type Lexer struct {
	source string
	pos    int // Current byte position
	line   int // Current line (1-indexed)
	column int // Current column (1-indexed)
	logger *zap.Logger
}

// NewLexer creates a new lexer for the given format string
func NewLexer(source string, logger *zap.Logger) *Lexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgLexerCreated, zap.Int(LogFieldSource, len(source)))
	return &Lexer{
		source: source,
		pos:    0,
		line:   1,
		column: 1,
		logger: logger,
	}
}

// Tokenize processes the source and returns a token stream
func (l *Lexer) Tokenize() ([]Token, error) {
	l.logger.Debug(LogMsgTokenizerStart)
	var tokens []Token

	for !l.isAtEnd() {
		pos := l.currentPosition()

		switch l.peek() {
		case CharGroupOpen:
			l.advance()
			tokens = append(tokens, NewGroupOpenToken(pos))

		case CharGroupClose:
			l.advance()
			tokens = append(tokens, NewGroupCloseToken(pos))

		case CharStyleOpen:
			l.advance()
			tokens = append(tokens, NewStyleOpenToken(pos))

		case CharStyleClose:
			l.advance()
			tokens = append(tokens, NewStyleCloseToken(pos))

		case CharDollar:
			tok, err := l.scanDollar()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case CharBackslash:
			tok, err := l.scanEscape()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		default:
			tok := l.scanText()
			if tok.Value != "" {
				tokens = append(tokens, tok)
			}
		}
	}

	tokens = append(tokens, NewEOFToken(l.currentPosition()))
	l.logger.Debug(LogMsgTokenizerEnd, zap.Int(LogFieldTokens, len(tokens)))
	return tokens, nil
}

// scanText scans literal text until the next special character
func (l *Lexer) scanText() Token {
	startPos := l.currentPosition()
	var sb strings.Builder

	for !l.isAtEnd() && !isSpecial(l.peek()) {
		sb.WriteByte(l.advance())
	}

	return NewTextToken(sb.String(), startPos)
}

// scanDollar scans a $name variable reference or the $$ escape
func (l *Lexer) scanDollar() (Token, error) {
	startPos := l.currentPosition()
	l.advance() // consume $

	// $$ escapes a literal dollar sign
	if !l.isAtEnd() && l.peek() == CharDollar {
		l.advance()
		return NewTextToken(string(CharDollar), startPos), nil
	}

	var sb strings.Builder
	for !l.isAtEnd() && isIdentChar(l.peek()) {
		sb.WriteByte(l.advance())
	}

	if sb.Len() == 0 {
		return Token{}, l.newEmptyVariableError(startPos)
	}

	return NewVariableToken(sb.String(), startPos), nil
}

// scanEscape scans a backslash escape for one of the special characters
func (l *Lexer) scanEscape() (Token, error) {
	startPos := l.currentPosition()
	l.advance() // consume backslash

	if l.isAtEnd() {
		return Token{}, l.newInvalidEscapeError(startPos)
	}

	ch := l.peek()
	switch ch {
	case CharDollar, CharGroupOpen, CharGroupClose, CharStyleOpen, CharStyleClose, CharBackslash:
		l.advance()
		return NewTextToken(string(ch), startPos), nil
	default:
		return Token{}, l.newInvalidEscapeError(startPos)
	}
}

// Helper methods

// currentPosition returns the current position
func (l *Lexer) currentPosition() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

// isAtEnd returns true if we've reached the end of source
func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

// peek returns the current character without advancing
func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.pos]
}

// advance consumes and returns the current character
func (l *Lexer) advance() byte {
	if l.isAtEnd() {
		return 0
	}
	ch := l.source[l.pos]
	l.pos++
	if ch == CharNewline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

// Character classification helpers

func isSpecial(ch byte) bool {
	switch ch {
	case CharDollar, CharBackslash, CharGroupOpen, CharGroupClose, CharStyleOpen, CharStyleClose:
		return true
	}
	return false
}

func isIdentChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') || ch == CharUnderscore
}

// Error helpers

func (l *Lexer) newInvalidEscapeError(pos Position) error {
	return &LexerError{
		Message:  ErrMsgInvalidEscape,
		Position: pos,
	}
}

func (l *Lexer) newEmptyVariableError(pos Position) error {
	return &LexerError{
		Message:  ErrMsgEmptyVariable,
		Position: pos,
	}
}

// LexerError represents a lexer error with position
type LexerError struct {
	Message  string
	Position Position
}

func (e *LexerError) Error() string {
	return e.Message + " at " + e.Position.String()
}

// Error message constants for lexer
const (
	ErrMsgInvalidEscape = "invalid escape sequence"
	ErrMsgEmptyVariable = "empty variable reference"
)
