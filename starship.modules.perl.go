package starship

import (
	"context"
)

// perl version command constants
const (
	perlCommand     = "perl"
	perlVersionFlag = "-e"
	perlVersionExpr = "printf q#%vd#,$^V;"
)

// perlModule shows the installed Perl version inside Perl projects
func perlModule(ctx context.Context, sctx *Context, cfg *Config) (*Module, error) {
	conf := cfg.Perl
	if conf.Disabled {
		return nil, nil
	}

	isPerlProject := sctx.Scan().
		SetExtensions(conf.DetectExtensions).
		SetFiles(conf.DetectFiles).
		SetFolders(conf.DetectFolders).
		IsMatch()
	if !isPerlProject {
		return nil, nil
	}

	f, err := NewFormatterWithFallback(conf.Format, DefaultFormatPerl, WithLogger(sctx.Logger()))
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
			raw, err := sctx.ExecCmd(ctx, perlCommand, perlVersionFlag, perlVersionExpr)
			if err != nil {
				return ResolveError(err)
			}
			version, err := FormatVersion(ModuleNamePerl, raw, conf.VersionFormat)
			if err != nil {
				return ResolveError(err)
			}
			return ResolveText(version)
		}).
		Render(ctx)
	if err != nil {
		return nil, err
	}

	return &Module{Name: ModuleNamePerl, Segments: segments}, nil
}
