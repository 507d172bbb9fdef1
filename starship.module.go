package starship

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Module is one rendered prompt unit: a name and its ordered segments
type Module struct {
	Name     string
	Segments []Segment
}

// Plain returns the module's unstyled text
func (m *Module) Plain() string {
	return PlainSegments(m.Segments)
}

// ModuleFunc produces a module for a context. A nil module with a nil error
// means the module is hidden (no project detected, nothing to show).
type ModuleFunc func(ctx context.Context, sctx *Context, cfg *Config) (*Module, error)

// builtinModules maps module names to their implementations
var builtinModules = map[string]ModuleFunc{
	ModuleNameAWS:  awsModule,
	ModuleNamePerl: perlModule,
	ModuleNamePony: ponyModule,
}

// RenderModules evaluates every configured module concurrently and returns
// the rendered modules in configured order. A failing module is logged as a
// warning and omitted; one module's failure never prevents the others.
func RenderModules(ctx context.Context, sctx *Context, cfg *Config) []*Module {
	logger := sctx.Logger()

	results := make([]*Module, len(cfg.ModuleOrder))
	g, gctx := errgroup.WithContext(ctx)

	for i, name := range cfg.ModuleOrder {
		fn, ok := builtinModules[name]
		if !ok {
			logger.Warn(LogMsgModuleFailed,
				zap.String(LogFieldModule, name),
				zap.String(LogFieldError, "unknown module"))
			continue
		}
		i, name := i, name
		g.Go(func() error {
			module, err := fn(gctx, sctx, cfg)
			if err != nil {
				logger.Warn(LogMsgModuleFailed,
					zap.String(LogFieldModule, name),
					zap.Error(err))
				return nil
			}
			results[i] = module
			return nil
		})
	}

	// Module errors are swallowed above; Wait only orders completion
	_ = g.Wait()

	modules := make([]*Module, 0, len(results))
	for _, m := range results {
		if m != nil {
			modules = append(modules, m)
		}
	}

	logger.Debug(LogMsgPromptRendered, zap.Int(LogFieldModules, len(modules)))
	return modules
}

// RenderPrompt renders the full prompt line for the context: every module in
// configured order, ANSI-styled and concatenated.
func RenderPrompt(ctx context.Context, sctx *Context, cfg *Config) (string, error) {
	modules := RenderModules(ctx, sctx, cfg)

	var sb strings.Builder
	for _, module := range modules {
		rendered, err := RenderSegments(module.Segments)
		if err != nil {
			// An invalid style spec fails that module only
			sctx.Logger().Warn(LogMsgModuleFailed,
				zap.String(LogFieldModule, module.Name),
				zap.Error(err))
			continue
		}
		sb.WriteString(rendered)
	}
	return sb.String(), nil
}

// styleResolverFor builds the standard single-variable style resolver every
// bundled module uses: $style maps to the module's configured style spec.
func styleResolverFor(style string) StyleResolver {
	return func(name string) ResolvedValue {
		if name == VarStyle {
			if err := ValidateStyle(style); err != nil {
				return ResolveError(err)
			}
			return ResolveText(style)
		}
		return ResolveAbsent()
	}
}

// symbolResolverFor builds the standard meta resolver mapping $symbol to the
// module's configured symbol.
func symbolResolverFor(symbol string) MetaResolver {
	return func(name string) (string, bool) {
		if name == VarSymbol {
			return symbol, true
		}
		return "", false
	}
}
