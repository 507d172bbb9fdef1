package internal

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Segment is the evaluator's sole output unit: literal text plus an optional
// style spec. An empty Style means the segment is unstyled. The style spec is
// carried opaquely; translating it to terminal attributes is the caller's job.
type Segment struct {
	Text  string
	Style string
}

// ResolvedState is the tri-state outcome of a value lookup
type ResolvedState int

// Resolved states
const (
	StateAbsent ResolvedState = iota
	StateText
	StateError
)

// ResolvedValue is the result of resolving a variable: text, absent, or a
// resolution failure propagated from the collaborator.
type ResolvedValue struct {
	Text  string
	State ResolvedState
	Err   error
}

// ResolveText creates a resolved value carrying text
func ResolveText(text string) ResolvedValue {
	return ResolvedValue{Text: text, State: StateText}
}

// ResolveAbsent creates a resolved value for a variable with no applicable value
func ResolveAbsent() ResolvedValue {
	return ResolvedValue{State: StateAbsent}
}

// ResolveError creates a resolved value for a failed resolution
func ResolveError(err error) ResolvedValue {
	return ResolvedValue{State: StateError, Err: err}
}

// MetaResolver maps a variable name to a simple unstyled substitution (icons)
type MetaResolver func(name string) (string, bool)

// StyleResolver maps a style-variable name to a style spec string. Absent
// means the name is not claimed; an error aborts evaluation.
type StyleResolver func(name string) ResolvedValue

// ValueResolver maps a content-variable name to its computed text
type ValueResolver func(name string) ResolvedValue

// AsyncValueResolver is the asynchronous value-resolution variant. All async
// lookups complete before the synchronous tree walk begins.
type AsyncValueResolver func(ctx context.Context, name string) ResolvedValue

// Resolvers bundles the lookup stages registered against a parsed tree.
// Any stage may be nil; a nil stage resolves nothing.
type Resolvers struct {
	Meta       MetaResolver
	Style      StyleResolver
	Value      ValueResolver
	AsyncValue AsyncValueResolver
}

// Evaluator walks a parsed format tree applying the registered resolvers and
// producing an ordered segment sequence with group elision applied.
type Evaluator struct {
	resolvers Resolvers
	logger    *zap.Logger
}

// NewEvaluator creates an evaluator with the given resolvers
func NewEvaluator(resolvers Resolvers, logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgEvalCreated)
	return &Evaluator{
		resolvers: resolvers,
		logger:    logger,
	}
}

// Evaluate runs the two-phase evaluation: first every variable claimed by the
// async resolver is resolved concurrently, then the synchronous depth-first
// walk produces segments. Output order is a function of the tree and the
// resolved values alone, never of async completion order.
func (e *Evaluator) Evaluate(ctx context.Context, root *RootNode) ([]Segment, error) {
	e.logger.Debug(LogMsgEvalStart)

	values, err := e.gatherAsyncValues(ctx, root)
	if err != nil {
		return nil, err
	}

	segments, _, _, err := e.evalNodes(root.Children, values)
	if err != nil {
		return nil, err
	}

	e.logger.Debug(LogMsgEvalEnd, zap.Int(LogFieldSegments, len(segments)))
	return segments, nil
}

// gatherAsyncValues resolves all async-claimed variables in the tree,
// each independently, and returns the name to value map.
func (e *Evaluator) gatherAsyncValues(ctx context.Context, root *RootNode) (map[string]ResolvedValue, error) {
	if e.resolvers.AsyncValue == nil {
		return nil, nil
	}

	names := e.collectAsyncNames(root.Children, nil, make(map[string]bool))
	if len(names) == 0 {
		return nil, nil
	}

	e.logger.Debug(LogMsgAsyncGather, zap.Int(LogFieldVariables, len(names)))

	results := make([]ResolvedValue, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			results[i] = e.resolvers.AsyncValue(gctx, name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	values := make(map[string]ResolvedValue, len(names))
	for i, name := range names {
		values[name] = results[i]
	}

	e.logger.Debug(LogMsgAsyncDone, zap.Int(LogFieldVariables, len(values)))
	return values, nil
}

// collectAsyncNames walks the tree collecting content-variable names not
// already satisfied by the meta resolver, deduplicated in source order.
func (e *Evaluator) collectAsyncNames(nodes []Node, names []string, seen map[string]bool) []string {
	for _, node := range nodes {
		switch n := node.(type) {
		case *VariableNode:
			if seen[n.Name] {
				continue
			}
			if e.resolvers.Meta != nil {
				if _, ok := e.resolvers.Meta(n.Name); ok {
					continue
				}
			}
			seen[n.Name] = true
			names = append(names, n.Name)
		case *GroupNode:
			names = e.collectAsyncNames(n.Children, names, seen)
		}
	}
	return names
}

// evalNodes evaluates a node sequence, buffering segments and tracking how
// many variable references it contains and how many of those resolved.
func (e *Evaluator) evalNodes(nodes []Node, values map[string]ResolvedValue) ([]Segment, int, int, error) {
	var segments []Segment
	resolved, refs := 0, 0

	for _, node := range nodes {
		segs, nodeResolved, nodeRefs, err := e.evalNode(node, values)
		if err != nil {
			return nil, 0, 0, err
		}
		segments = append(segments, segs...)
		resolved += nodeResolved
		refs += nodeRefs
	}

	return segments, resolved, refs, nil
}

// evalNode evaluates a single node
func (e *Evaluator) evalNode(node Node, values map[string]ResolvedValue) ([]Segment, int, int, error) {
	switch n := node.(type) {
	case *TextNode:
		return []Segment{{Text: n.Content}}, 0, 0, nil

	case *VariableNode:
		return e.evalVariable(n, values)

	case *GroupNode:
		return e.evalGroup(n, values)

	default:
		return nil, 0, 0, &EvalError{Message: ErrMsgUnknownNodeType, Position: node.Pos()}
	}
}

// evalVariable resolves a single content variable: meta first, then the
// prefetched async values, then the sync value resolver.
func (e *Evaluator) evalVariable(n *VariableNode, values map[string]ResolvedValue) ([]Segment, int, int, error) {
	if e.resolvers.Meta != nil {
		if text, ok := e.resolvers.Meta(n.Name); ok {
			return []Segment{{Text: text}}, 1, 1, nil
		}
	}

	value, ok := values[n.Name]
	if !ok || value.State == StateAbsent {
		if e.resolvers.Value != nil {
			value = e.resolvers.Value(n.Name)
		}
	}

	switch value.State {
	case StateText:
		if value.Text == StringValueEmpty {
			return nil, 1, 1, nil
		}
		return []Segment{{Text: value.Text}}, 1, 1, nil

	case StateError:
		return nil, 0, 0, &EvalError{
			Message:  ErrMsgValueResolveFailed,
			Variable: n.Name,
			Position: n.Pos(),
			Cause:    value.Err,
		}

	default:
		// Unresolved: contributes nothing but counts toward elision
		return nil, 0, 1, nil
	}
}

// evalGroup buffers the display span, applies the elision rule, and styles
// the surviving segments.
func (e *Evaluator) evalGroup(n *GroupNode, values map[string]ResolvedValue) ([]Segment, int, int, error) {
	segments, resolved, refs, err := e.evalNodes(n.Children, values)
	if err != nil {
		return nil, 0, 0, err
	}

	// Elision: every reference in the display span unresolved.
	// The style wrapper is dropped with it, and the group reads as one
	// unresolved reference from its parent.
	if refs > 0 && resolved == 0 {
		return nil, 0, 1, nil
	}

	style, err := e.resolveStyleSpan(n.Style)
	if err != nil {
		return nil, 0, 0, err
	}

	// Group style applies to children that carry no more specific style
	if style != StringValueEmpty {
		for i := range segments {
			if segments[i].Style == StringValueEmpty {
				segments[i].Style = style
			}
		}
	}

	// A kept group with references reads as a single resolved reference;
	// a pure-literal group reads as no reference at all.
	if refs > 0 {
		return segments, 1, 1, nil
	}
	return segments, 0, 0, nil
}

// resolveStyleSpan resolves a style token sequence into a space-joined spec
func (e *Evaluator) resolveStyleSpan(tokens []StyleToken) (string, error) {
	var parts []string

	for _, tok := range tokens {
		if tok.Kind == StyleTokenLiteral {
			parts = append(parts, tok.Value)
			continue
		}

		if e.resolvers.Style == nil {
			continue
		}
		value := e.resolvers.Style(tok.Value)
		switch value.State {
		case StateText:
			if value.Text != StringValueEmpty {
				parts = append(parts, value.Text)
			}
		case StateError:
			return StringValueEmpty, &EvalError{
				Message:  ErrMsgStyleResolveFailed,
				Variable: tok.Value,
				Position: tok.Pos,
				Cause:    value.Err,
			}
		}
	}

	return strings.Join(parts, StyleTokenSep), nil
}

// EvalError represents an evaluation error with variable context
type EvalError struct {
	Message  string
	Variable string
	Position Position
	Cause    error
}

func (e *EvalError) Error() string {
	msg := e.Message
	if e.Variable != StringValueEmpty {
		msg += " for variable $" + e.Variable
	}
	msg += " at " + e.Position.String()
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *EvalError) Unwrap() error {
	return e.Cause
}

// Error message constants for the evaluator
const (
	ErrMsgUnknownNodeType    = "unknown node type"
	ErrMsgValueResolveFailed = "value resolution failed"
	ErrMsgStyleResolveFailed = "style resolution failed"
)
