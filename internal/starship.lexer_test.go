package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLexer_Tokenize_PlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "empty string",
			input: "",
			expected: []Token{
				{Type: TokenTypeEOF, Position: Position{Offset: 0, Line: 1, Column: 1}},
			},
		},
		{
			name:  "simple text",
			input: "via ",
			expected: []Token{
				{Type: TokenTypeText, Value: "via ", Position: Position{Offset: 0, Line: 1, Column: 1}},
				{Type: TokenTypeEOF, Position: Position{Offset: 4, Line: 1, Column: 5}},
			},
		},
		{
			name:  "multiline text",
			input: "line 1\nline 2",
			expected: []Token{
				{Type: TokenTypeText, Value: "line 1\nline 2", Position: Position{Offset: 0, Line: 1, Column: 1}},
				{Type: TokenTypeEOF, Position: Position{Offset: 13, Line: 2, Column: 7}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexer(tt.input, zap.NewNop())
			tokens, err := lexer.Tokenize()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestLexer_Tokenize_Variables(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "bare variable",
			input: "$version",
			expected: []Token{
				{Type: TokenTypeVariable, Value: "version", Position: Position{Offset: 0, Line: 1, Column: 1}},
				{Type: TokenTypeEOF, Position: Position{Offset: 8, Line: 1, Column: 9}},
			},
		},
		{
			name:  "variable between text",
			input: "via $version now",
			expected: []Token{
				{Type: TokenTypeText, Value: "via ", Position: Position{Offset: 0, Line: 1, Column: 1}},
				{Type: TokenTypeVariable, Value: "version", Position: Position{Offset: 4, Line: 1, Column: 5}},
				{Type: TokenTypeText, Value: " now", Position: Position{Offset: 12, Line: 1, Column: 13}},
				{Type: TokenTypeEOF, Position: Position{Offset: 16, Line: 1, Column: 17}},
			},
		},
		{
			name:  "underscore and digits",
			input: "$aws_profile2",
			expected: []Token{
				{Type: TokenTypeVariable, Value: "aws_profile2", Position: Position{Offset: 0, Line: 1, Column: 1}},
				{Type: TokenTypeEOF, Position: Position{Offset: 13, Line: 1, Column: 14}},
			},
		},
		{
			name:  "adjacent variables",
			input: "$symbol$version",
			expected: []Token{
				{Type: TokenTypeVariable, Value: "symbol", Position: Position{Offset: 0, Line: 1, Column: 1}},
				{Type: TokenTypeVariable, Value: "version", Position: Position{Offset: 7, Line: 1, Column: 8}},
				{Type: TokenTypeEOF, Position: Position{Offset: 15, Line: 1, Column: 16}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexer(tt.input, zap.NewNop())
			tokens, err := lexer.Tokenize()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestLexer_Tokenize_Groups(t *testing.T) {
	lexer := NewLexer("via [$symbol]($style) ", zap.NewNop())
	tokens, err := lexer.Tokenize()
	require.NoError(t, err)

	expected := []Token{
		{Type: TokenTypeText, Value: "via ", Position: Position{Offset: 0, Line: 1, Column: 1}},
		{Type: TokenTypeGroupOpen, Position: Position{Offset: 4, Line: 1, Column: 5}},
		{Type: TokenTypeVariable, Value: "symbol", Position: Position{Offset: 5, Line: 1, Column: 6}},
		{Type: TokenTypeGroupClose, Position: Position{Offset: 12, Line: 1, Column: 13}},
		{Type: TokenTypeStyleOpen, Position: Position{Offset: 13, Line: 1, Column: 14}},
		{Type: TokenTypeVariable, Value: "style", Position: Position{Offset: 14, Line: 1, Column: 15}},
		{Type: TokenTypeStyleClose, Position: Position{Offset: 20, Line: 1, Column: 21}},
		{Type: TokenTypeText, Value: " ", Position: Position{Offset: 21, Line: 1, Column: 22}},
		{Type: TokenTypeEOF, Position: Position{Offset: 22, Line: 1, Column: 23}},
	}
	assert.Equal(t, expected, tokens)
}

func TestLexer_Tokenize_Escapes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string // expected text token values, in order
	}{
		{name: "double dollar", input: "$$", expected: []string{"$"}},
		{name: "backslash dollar", input: `\$`, expected: []string{"$"}},
		{name: "escaped brackets", input: `\[\]`, expected: []string{"[", "]"}},
		{name: "escaped parens", input: `\(\)`, expected: []string{"(", ")"}},
		{name: "escaped backslash", input: `\\`, expected: []string{`\`}},
		{name: "mixed", input: `cost: \$5`, expected: []string{"cost: ", "$", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexer(tt.input, zap.NewNop())
			tokens, err := lexer.Tokenize()
			require.NoError(t, err)

			var texts []string
			for _, tok := range tokens {
				if tok.Type == TokenTypeText {
					texts = append(texts, tok.Value)
				}
			}
			assert.Equal(t, tt.expected, texts)
		})
	}
}

func TestLexer_Tokenize_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
		offset  int
	}{
		{name: "invalid escape", input: `\x`, message: ErrMsgInvalidEscape, offset: 0},
		{name: "trailing backslash", input: `abc\`, message: ErrMsgInvalidEscape, offset: 3},
		{name: "bare dollar", input: "$ rest", message: ErrMsgEmptyVariable, offset: 0},
		{name: "dollar at end", input: "abc$", message: ErrMsgEmptyVariable, offset: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := NewLexer(tt.input, zap.NewNop())
			_, err := lexer.Tokenize()
			require.Error(t, err)

			var lexErr *LexerError
			require.True(t, errors.As(err, &lexErr))
			assert.Equal(t, tt.message, lexErr.Message)
			assert.Equal(t, tt.offset, lexErr.Position.Offset)
		})
	}
}
