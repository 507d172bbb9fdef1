package internal

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Parser produces a format tree from a token stream
type Parser struct {
	tokens []Token
	pos    int
	logger *zap.Logger
}

// NewParser creates a new parser for the given token stream
func NewParser(tokens []Token, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgParserCreated, zap.Int(LogFieldTokens, len(tokens)))
	return &Parser{
		tokens: tokens,
		pos:    0,
		logger: logger,
	}
}

// Parse produces the tree root node from the token stream
func (p *Parser) Parse() (*RootNode, error) {
	p.logger.Debug(LogMsgParserStart)

	nodes, err := p.parseNodes()
	if err != nil {
		return nil, err
	}

	// Anything left over at top level is a stray closer
	if !p.isAtEnd() {
		return nil, p.newUnexpectedTokenError(p.current())
	}

	root := &RootNode{Children: nodes}
	p.logger.Debug(LogMsgParserEnd, zap.Int(LogFieldNodes, len(nodes)))
	return root, nil
}

// parseNodes parses a sequence of nodes until EOF or a group closer
func (p *Parser) parseNodes() ([]Node, error) {
	var nodes []Node

	for !p.isAtEnd() && p.current().Type != TokenTypeGroupClose {
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		if node != nil {
			nodes = append(nodes, node)
		}
	}

	return nodes, nil
}

// parseNode parses a single node (text, variable, or group)
func (p *Parser) parseNode() (Node, error) {
	tok := p.current()

	switch tok.Type {
	case TokenTypeText:
		p.advance()
		return NewTextNode(tok.Value, tok.Position), nil

	case TokenTypeVariable:
		p.advance()
		return NewVariableNode(tok.Value, tok.Position), nil

	case TokenTypeGroupOpen:
		return p.parseGroup()

	case TokenTypeEOF:
		return nil, nil

	default:
		// Stray ( or ) outside a group construct; escapes exist for literals
		return nil, p.newUnexpectedTokenError(tok)
	}
}

// parseGroup parses a [display](style) construct
func (p *Parser) parseGroup() (*GroupNode, error) {
	openTok := p.advance() // consume [

	children, err := p.parseNodes()
	if err != nil {
		return nil, err
	}

	// Expect the matching ]; reported at the point the input ran out
	if p.current().Type != TokenTypeGroupClose {
		return nil, p.newUnterminatedGroupError(p.current().Position)
	}
	p.advance()

	// The style span is mandatory and must follow immediately
	if p.current().Type != TokenTypeStyleOpen {
		return nil, p.newMissingStyleError(p.current().Position)
	}
	styleOpen := p.advance()

	style, err := p.parseStyleSpan(styleOpen.Position)
	if err != nil {
		return nil, err
	}

	return NewGroupNode(children, style, openTok.Position), nil
}

// parseStyleSpan parses the flat token sequence between ( and )
func (p *Parser) parseStyleSpan(openPos Position) ([]StyleToken, error) {
	var style []StyleToken

	for {
		tok := p.current()

		switch tok.Type {
		case TokenTypeStyleClose:
			p.advance()
			return style, nil

		case TokenTypeText:
			p.advance()
			for _, keyword := range strings.Fields(tok.Value) {
				style = append(style, NewLiteralStyleToken(keyword, tok.Position))
			}

		case TokenTypeVariable:
			p.advance()
			style = append(style, NewVariableStyleToken(tok.Value, tok.Position))

		case TokenTypeEOF:
			return nil, p.newUnterminatedStyleError(openPos)

		default:
			// Groups never nest inside a style span
			return nil, p.newUnexpectedTokenError(tok)
		}
	}
}

// Helper methods

// current returns the token at the current position
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return NewEOFToken(Position{})
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token
func (p *Parser) advance() Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// isAtEnd returns true when the current token is EOF
func (p *Parser) isAtEnd() bool {
	return p.current().IsEOF()
}

// Error helpers

func (p *Parser) newUnexpectedTokenError(tok Token) error {
	return &ParserError{
		Message:  fmt.Sprintf("%s: %s", ErrMsgUnexpectedToken, tok.Type),
		Position: tok.Position,
	}
}

func (p *Parser) newUnterminatedGroupError(pos Position) error {
	return &ParserError{
		Message:  ErrMsgUnterminatedGroup,
		Position: pos,
	}
}

func (p *Parser) newUnterminatedStyleError(pos Position) error {
	return &ParserError{
		Message:  ErrMsgUnterminatedStyle,
		Position: pos,
	}
}

func (p *Parser) newMissingStyleError(pos Position) error {
	return &ParserError{
		Message:  ErrMsgMissingStyle,
		Position: pos,
	}
}

// ParserError represents a parser error with position
type ParserError struct {
	Message  string
	Position Position
}

func (e *ParserError) Error() string {
	return e.Message + " at " + e.Position.String()
}

// Error message constants for parser
const (
	ErrMsgUnexpectedToken   = "unexpected token"
	ErrMsgUnterminatedGroup = "unterminated display span"
	ErrMsgUnterminatedStyle = "unterminated style span"
	ErrMsgMissingStyle      = "display span without style span"
)
