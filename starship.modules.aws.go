package starship

import (
	"context"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Environment variables the aws module reads, in priority order
var awsProfileEnvVars = []string{"AWSU_PROFILE", "AWS_VAULT", "AWS_PROFILE"}

// AWS config file constants
const (
	awsConfigFileEnvVar   = "AWS_CONFIG_FILE"
	awsRegionEnvVar       = "AWS_REGION"
	awsDefaultRegionVar   = "AWS_DEFAULT_REGION"
	awsConfigRelativePath = ".aws/config"
	awsConfigRegionKey    = "region"
	awsConfigProfilePre   = "profile "
	awsConfigDefaultSect  = "default"
)

// awsModule shows the active AWS profile and region. Hidden when neither
// resolves from the environment or the shared config file.
func awsModule(ctx context.Context, sctx *Context, cfg *Config) (*Module, error) {
	conf := cfg.AWS
	if conf.Disabled {
		return nil, nil
	}

	profile := awsProfile(sctx)
	region := awsRegion(sctx, profile)
	if profile == "" && region == "" {
		return nil, nil
	}

	if alias, ok := conf.RegionAliases[region]; ok {
		region = alias
	}

	f, err := NewFormatterWithFallback(conf.Format, DefaultFormatAWS, WithLogger(sctx.Logger()))
	if err != nil {
		return nil, err
	}

	segments, err := f.
		MapMeta(symbolResolverFor(conf.Symbol)).
		MapStyle(styleResolverFor(conf.Style)).
		Map(func(name string) ResolvedValue {
			switch name {
			case VarProfile:
				if profile == "" {
					return ResolveAbsent()
				}
				return ResolveText(profile)
			case VarRegion:
				if region == "" {
					return ResolveAbsent()
				}
				return ResolveText(region)
			default:
				return ResolveAbsent()
			}
		}).
		Render(ctx)
	if err != nil {
		return nil, err
	}

	return &Module{Name: ModuleNameAWS, Segments: segments}, nil
}

// awsProfile returns the active profile from the environment
func awsProfile(sctx *Context) string {
	for _, envVar := range awsProfileEnvVars {
		if value, ok := sctx.GetEnv(envVar); ok && value != "" {
			return value
		}
	}
	return ""
}

// awsRegion returns the active region: environment first, then the profile's
// section of the shared AWS config file.
func awsRegion(sctx *Context, profile string) string {
	if region, ok := sctx.GetEnv(awsDefaultRegionVar); ok && region != "" {
		return region
	}
	if region, ok := sctx.GetEnv(awsRegionEnvVar); ok && region != "" {
		return region
	}
	return awsRegionFromConfig(sctx, profile)
}

// awsRegionFromConfig reads the region from ~/.aws/config or the file named
// by AWS_CONFIG_FILE. Any read or parse failure is simply no region.
func awsRegionFromConfig(sctx *Context, profile string) string {
	path, ok := sctx.GetEnv(awsConfigFileEnvVar)
	if !ok || path == "" {
		home, err := sctx.HomeDir()
		if err != nil {
			return ""
		}
		path = filepath.Join(home, awsConfigRelativePath)
	}

	file, err := ini.Load(path)
	if err != nil {
		return ""
	}

	sectionName := awsConfigDefaultSect
	if profile != "" {
		sectionName = awsConfigProfilePre + profile
	}
	section, err := file.GetSection(sectionName)
	if err != nil {
		return ""
	}
	return section.Key(awsConfigRegionKey).String()
}
