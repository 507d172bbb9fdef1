package starship

import (
	"context"

	"go.uber.org/zap"

	"github.com/alexmaco/starship/internal"
)

// ResolvedValue is the tri-state outcome of a variable lookup: text, absent,
// or a resolution failure propagated from the collaborator.
type ResolvedValue struct {
	inner internal.ResolvedValue
}

// ResolveText creates a resolved value carrying text
func ResolveText(text string) ResolvedValue {
	return ResolvedValue{inner: internal.ResolveText(text)}
}

// ResolveAbsent creates a resolved value for a variable with no applicable value
func ResolveAbsent() ResolvedValue {
	return ResolvedValue{inner: internal.ResolveAbsent()}
}

// ResolveError creates a resolved value for a failed resolution
func ResolveError(err error) ResolvedValue {
	return ResolvedValue{inner: internal.ResolveError(err)}
}

// MetaResolver maps a variable name to a simple unstyled substitution, such
// as a module symbol. A hit takes priority over the value resolver.
type MetaResolver func(name string) (string, bool)

// StyleResolver maps a style-variable name to a style spec string such as
// "bold yellow". ResolveAbsent means the name is not claimed; ResolveError
// aborts the render.
type StyleResolver func(name string) ResolvedValue

// ValueResolver maps a content-variable name to its computed text
type ValueResolver func(name string) ResolvedValue

// AsyncValueResolver is the asynchronous value-resolution variant, used for
// lookups backed by subprocess calls. All async lookups for a render are
// awaited as a batch before segments are produced.
type AsyncValueResolver func(ctx context.Context, name string) ResolvedValue

// Formatter is a parsed format string with registered resolvers. A Formatter
// is built once per module invocation and rendered exactly once; it is not
// safe for concurrent mutation.
type Formatter struct {
	source    string
	tree      *internal.RootNode
	resolvers internal.Resolvers
	logger    *zap.Logger
}

// NewFormatter parses a format string into a Formatter. A malformed format
// yields a parse error carrying line/column/offset metadata; no partial tree
// is ever produced.
func NewFormatter(format string, opts ...Option) (*Formatter, error) {
	config := defaultFormatterConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	lexer := internal.NewLexer(format, logger)
	tokens, err := lexer.Tokenize()
	if err != nil {
		return nil, wrapInternalParseError(err)
	}

	parser := internal.NewParser(tokens, logger)
	tree, err := parser.Parse()
	if err != nil {
		return nil, wrapInternalParseError(err)
	}

	return &Formatter{
		source: format,
		tree:   tree,
		logger: logger,
	}, nil
}

// NewFormatterWithFallback parses the primary format, retrying with the
// caller-supplied fallback when the primary fails to parse. Failure of the
// fallback as well is a configuration error for that module.
func NewFormatterWithFallback(format, fallback string, opts ...Option) (*Formatter, error) {
	f, err := NewFormatter(format, opts...)
	if err == nil {
		return f, nil
	}

	f, fbErr := NewFormatter(fallback, opts...)
	if fbErr != nil {
		return nil, NewFallbackError(fbErr)
	}
	f.logger.Warn(LogMsgModuleFallback,
		zap.String(LogFieldFormat, format),
		zap.Error(err))
	return f, nil
}

// MustNewFormatter parses a format string and panics on error. Intended for
// the built-in default formats, which are known to be well-formed.
func MustNewFormatter(format string, opts ...Option) *Formatter {
	f, err := NewFormatter(format, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// MapMeta registers the meta resolver. Returns the Formatter for chaining.
func (f *Formatter) MapMeta(fn MetaResolver) *Formatter {
	if fn != nil {
		f.resolvers.Meta = internal.MetaResolver(fn)
	}
	return f
}

// MapStyle registers the style resolver, consulted only for $name tokens in
// style spans. Returns the Formatter for chaining.
func (f *Formatter) MapStyle(fn StyleResolver) *Formatter {
	if fn != nil {
		f.resolvers.Style = func(name string) internal.ResolvedValue {
			return fn(name).inner
		}
	}
	return f
}

// Map registers the synchronous value resolver. Returns the Formatter for chaining.
func (f *Formatter) Map(fn ValueResolver) *Formatter {
	if fn != nil {
		f.resolvers.Value = func(name string) internal.ResolvedValue {
			return fn(name).inner
		}
	}
	return f
}

// AsyncMap registers the asynchronous value resolver. Returns the Formatter
// for chaining.
func (f *Formatter) AsyncMap(fn AsyncValueResolver) *Formatter {
	if fn != nil {
		f.resolvers.AsyncValue = func(ctx context.Context, name string) internal.ResolvedValue {
			return fn(ctx, name).inner
		}
	}
	return f
}

// Source returns the raw format string this Formatter was parsed from
func (f *Formatter) Source() string {
	return f.source
}

// Render evaluates the parsed tree against the registered resolvers and
// returns the ordered segment sequence. Any resolver failure aborts the
// whole render; there is no partial output.
func (f *Formatter) Render(ctx context.Context) ([]Segment, error) {
	evaluator := internal.NewEvaluator(f.resolvers, f.logger)
	internalSegments, err := evaluator.Evaluate(ctx, f.tree)
	if err != nil {
		return nil, wrapInternalEvalError(err)
	}

	segments := make([]Segment, 0, len(internalSegments))
	for _, s := range internalSegments {
		segments = append(segments, Segment{Text: s.Text, Style: s.Style})
	}
	return segments, nil
}
