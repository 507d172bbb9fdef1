package internal

import (
	"fmt"
	"strings"
)

// Node is the interface all format tree nodes implement
type Node interface {
	// Type returns the node type identifier
	Type() NodeType
	// Pos returns the source position of this node
	Pos() Position
	// String returns a human-readable representation
	String() string
}

// RootNode is the top-level container for a parsed format tree
type RootNode struct {
	Children []Node
}

// Type returns NodeTypeRoot
func (n *RootNode) Type() NodeType {
	return NodeTypeRoot
}

// Pos returns a zero position (root has no specific position)
func (n *RootNode) Pos() Position {
	return Position{Offset: 0, Line: 1, Column: 1}
}

// String returns a string representation of the root node
func (n *RootNode) String() string {
	var sb strings.Builder
	sb.WriteString("RootNode{\n")
	for i, child := range n.Children {
		sb.WriteString(fmt.Sprintf("  [%d] %s\n", i, child.String()))
	}
	sb.WriteString("}")
	return sb.String()
}

// TextNode represents literal text content (escapes already resolved)
type TextNode struct {
	pos     Position
	Content string
}

// Type returns NodeTypeText
func (n *TextNode) Type() NodeType {
	return NodeTypeText
}

// Pos returns the source position
func (n *TextNode) Pos() Position {
	return n.pos
}

// String returns a string representation
func (n *TextNode) String() string {
	content := n.Content
	if len(content) > MaxStringDisplayLength {
		content = content[:TruncatedStringLength] + TruncationSuffix
	}
	return fmt.Sprintf("TextNode{%q @ %s}", content, n.pos)
}

// NewTextNode creates a new text node
func NewTextNode(content string, pos Position) *TextNode {
	return &TextNode{
		pos:     pos,
		Content: content,
	}
}

// VariableNode represents a $name content-variable reference
type VariableNode struct {
	pos  Position
	Name string
}

// Type returns NodeTypeVariable
func (n *VariableNode) Type() NodeType {
	return NodeTypeVariable
}

// Pos returns the source position
func (n *VariableNode) Pos() Position {
	return n.pos
}

// String returns a string representation
func (n *VariableNode) String() string {
	return fmt.Sprintf("VariableNode{$%s @ %s}", n.Name, n.pos)
}

// NewVariableNode creates a new variable reference node
func NewVariableNode(name string, pos Position) *VariableNode {
	return &VariableNode{
		pos:  pos,
		Name: name,
	}
}

// StyleTokenKind distinguishes literal style keywords from $name references
type StyleTokenKind int

// Style token kinds
const (
	StyleTokenLiteral StyleTokenKind = iota
	StyleTokenVariable
)

// StyleToken is a single entry of a group's style span: either a literal
// keyword such as "bold" or a $name reference into the style resolver.
// Style spans are flat; they never contain groups.
type StyleToken struct {
	Kind  StyleTokenKind
	Value string
	Pos   Position
}

// String returns a string representation of the style token
func (t StyleToken) String() string {
	if t.Kind == StyleTokenVariable {
		return "$" + t.Value
	}
	return t.Value
}

// NewLiteralStyleToken creates a literal style keyword token
func NewLiteralStyleToken(value string, pos Position) StyleToken {
	return StyleToken{Kind: StyleTokenLiteral, Value: value, Pos: pos}
}

// NewVariableStyleToken creates a $name style reference token
func NewVariableStyleToken(name string, pos Position) StyleToken {
	return StyleToken{Kind: StyleTokenVariable, Value: name, Pos: pos}
}

// GroupNode represents a [display](style) construct. The display span may
// contain nested groups; the style span is a flat token sequence.
type GroupNode struct {
	pos      Position
	Children []Node
	Style    []StyleToken
}

// Type returns NodeTypeGroup
func (n *GroupNode) Type() NodeType {
	return NodeTypeGroup
}

// Pos returns the source position
func (n *GroupNode) Pos() Position {
	return n.pos
}

// String returns a string representation
func (n *GroupNode) String() string {
	styles := make([]string, 0, len(n.Style))
	for _, s := range n.Style {
		styles = append(styles, s.String())
	}
	return fmt.Sprintf("GroupNode{children=%d, style=%q @ %s}",
		len(n.Children), strings.Join(styles, StyleTokenSep), n.pos)
}

// NewGroupNode creates a new group node
func NewGroupNode(children []Node, style []StyleToken, pos Position) *GroupNode {
	return &GroupNode{
		pos:      pos,
		Children: children,
		Style:    style,
	}
}
