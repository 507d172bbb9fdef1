package internal

// TokenType represents the type of a lexical token
type TokenType string

// Token type constants
const (
	TokenTypeText       TokenType = "TEXT"
	TokenTypeVariable   TokenType = "VARIABLE"
	TokenTypeGroupOpen  TokenType = "GROUP_OPEN"
	TokenTypeGroupClose TokenType = "GROUP_CLOSE"
	TokenTypeStyleOpen  TokenType = "STYLE_OPEN"
	TokenTypeStyleClose TokenType = "STYLE_CLOSE"
	TokenTypeEOF        TokenType = "EOF"
)

// NodeType identifies format tree node types
type NodeType int

// Node type constants
const (
	NodeTypeRoot NodeType = iota
	NodeTypeText
	NodeTypeVariable
	NodeTypeGroup
)

// Node type string names for debugging
const (
	NodeTypeNameRoot     = "ROOT"
	NodeTypeNameText     = "TEXT"
	NodeTypeNameVariable = "VARIABLE"
	NodeTypeNameGroup    = "GROUP"
)

// String returns the string representation of the node type
func (n NodeType) String() string {
	switch n {
	case NodeTypeText:
		return NodeTypeNameText
	case NodeTypeVariable:
		return NodeTypeNameVariable
	case NodeTypeGroup:
		return NodeTypeNameGroup
	default:
		return NodeTypeNameRoot
	}
}

// Character constants
const (
	CharDollar      = '$'
	CharBackslash   = '\\'
	CharGroupOpen   = '['
	CharGroupClose  = ']'
	CharStyleOpen   = '('
	CharStyleClose  = ')'
	CharUnderscore  = '_'
	CharNewline     = '\n'
	CharSpace       = ' '
	CharTab         = '\t'
	CharCarriageRet = '\r'
)

// String constants
const (
	StringValueEmpty = ""
	StyleTokenSep    = " "
)

// Log message constants
const (
	LogMsgLexerCreated   = "lexer created"
	LogMsgTokenizerStart = "tokenizing format string"
	LogMsgTokenizerEnd   = "tokenizing complete"
	LogMsgParserCreated  = "parser created"
	LogMsgParserStart    = "parsing token stream"
	LogMsgParserEnd      = "parsing complete"
	LogMsgEvalCreated    = "evaluator created"
	LogMsgEvalStart      = "evaluating format tree"
	LogMsgEvalEnd        = "evaluation complete"
	LogMsgAsyncGather    = "gathering async variables"
	LogMsgAsyncDone      = "async variables resolved"
)

// Log field name constants
const (
	LogFieldSource    = "source_len"
	LogFieldTokens    = "tokens"
	LogFieldNodes     = "nodes"
	LogFieldSegments  = "segments"
	LogFieldVariables = "variables"
)

// Display truncation for node String() output
const (
	MaxStringDisplayLength = 40
	TruncatedStringLength  = 37
	TruncationSuffix       = "..."
)
