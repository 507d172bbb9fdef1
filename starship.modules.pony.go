package starship

import (
	"context"
	"strings"
)

// pony version command constants
const (
	ponyCommand     = "ponyc"
	ponyVersionFlag = "--version"
)

// ponyModule shows the Pony compiler version inside Pony projects
func ponyModule(ctx context.Context, sctx *Context, cfg *Config) (*Module, error) {
	conf := cfg.Pony
	if conf.Disabled {
		return nil, nil
	}

	isPonyProject := sctx.Scan().
		SetFiles(conf.DetectFiles).
		SetExtensions(conf.DetectExtensions).
		SetFolders(conf.DetectFolders).
		IsMatch()
	if !isPonyProject {
		return nil, nil
	}

	f, err := NewFormatterWithFallback(conf.Format, DefaultFormatPony, WithLogger(sctx.Logger()))
	if err != nil {
		return nil, err
	}

	segments, err := f.
		MapMeta(symbolResolverFor(conf.Symbol)).
		MapStyle(styleResolverFor(conf.Style)).
		AsyncMap(func(ctx context.Context, name string) ResolvedValue {
			if name != VarVersion {
				return ResolveAbsent()
			}
			out, err := sctx.ExecCmd(ctx, ponyCommand, ponyVersionFlag)
			if err != nil {
				return ResolveError(err)
			}
			// ponyc reports e.g. "0.38.1-55e80f8 [release]"; keep the bare version
			raw := strings.SplitN(strings.TrimSpace(out), "-", 2)[0]
			version, err := FormatVersion(ModuleNamePony, raw, conf.VersionFormat)
			if err != nil {
				return ResolveError(err)
			}
			return ResolveText(version)
		}).
		Render(ctx)
	if err != nil {
		return nil, err
	}

	return &Module{Name: ModuleNamePony, Segments: segments}, nil
}
