package starship

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func awsTestContext(t *testing.T, env map[string]string) *Context {
	t.Helper()
	return NewContext(t.TempDir(), WithEnv(env))
}

func TestAWSModule(t *testing.T) {
	t.Run("profile and region from environment", func(t *testing.T) {
		sctx := awsTestContext(t, map[string]string{
			"AWS_PROFILE":        "dev",
			"AWS_DEFAULT_REGION": "us-east-1",
		})

		module, err := awsModule(context.Background(), sctx, DefaultConfig())
		require.NoError(t, err)
		require.NotNil(t, module)
		assert.Equal(t, ModuleNameAWS, module.Name)
		assert.Equal(t, "on ☁️  dev (us-east-1) ", module.Plain())
	})

	t.Run("profile only elides the region parentheses", func(t *testing.T) {
		sctx := awsTestContext(t, map[string]string{"AWS_PROFILE": "dev"})

		module, err := awsModule(context.Background(), sctx, DefaultConfig())
		require.NoError(t, err)
		require.NotNil(t, module)
		assert.Equal(t, "on ☁️  dev ", module.Plain())
	})

	t.Run("hidden without profile or region", func(t *testing.T) {
		sctx := awsTestContext(t, map[string]string{"HOME": t.TempDir()})

		module, err := awsModule(context.Background(), sctx, DefaultConfig())
		require.NoError(t, err)
		assert.Nil(t, module)
	})

	t.Run("disabled", func(t *testing.T) {
		sctx := awsTestContext(t, map[string]string{"AWS_PROFILE": "dev"})
		cfg := DefaultConfig()
		cfg.AWS.Disabled = true

		module, err := awsModule(context.Background(), sctx, cfg)
		require.NoError(t, err)
		assert.Nil(t, module)
	})

	t.Run("profile env priority", func(t *testing.T) {
		sctx := awsTestContext(t, map[string]string{
			"AWSU_PROFILE": "first",
			"AWS_VAULT":    "second",
			"AWS_PROFILE":  "third",
		})

		assert.Equal(t, "first", awsProfile(sctx))
	})

	t.Run("region alias applied", func(t *testing.T) {
		sctx := awsTestContext(t, map[string]string{
			"AWS_PROFILE":        "dev",
			"AWS_DEFAULT_REGION": "ap-southeast-2",
		})
		cfg := DefaultConfig()
		cfg.AWS.RegionAliases = map[string]string{"ap-southeast-2": "au"}

		module, err := awsModule(context.Background(), sctx, cfg)
		require.NoError(t, err)
		require.NotNil(t, module)
		assert.Equal(t, "on ☁️  dev (au) ", module.Plain())
	})
}

func TestAWSRegionFromConfig(t *testing.T) {
	writeAWSConfig := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "config")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("profile section", func(t *testing.T) {
		path := writeAWSConfig(t, `
[default]
region = us-west-1

[profile dev]
region = eu-central-1
`)
		sctx := awsTestContext(t, map[string]string{"AWS_CONFIG_FILE": path})

		assert.Equal(t, "eu-central-1", awsRegion(sctx, "dev"))
	})

	t.Run("default section without profile", func(t *testing.T) {
		path := writeAWSConfig(t, `
[default]
region = us-west-1
`)
		sctx := awsTestContext(t, map[string]string{"AWS_CONFIG_FILE": path})

		assert.Equal(t, "us-west-1", awsRegion(sctx, ""))
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := writeAWSConfig(t, `
[default]
region = us-west-1
`)
		sctx := awsTestContext(t, map[string]string{
			"AWS_CONFIG_FILE":    path,
			"AWS_DEFAULT_REGION": "sa-east-1",
		})

		assert.Equal(t, "sa-east-1", awsRegion(sctx, ""))
	})

	t.Run("missing file is no region", func(t *testing.T) {
		sctx := awsTestContext(t, map[string]string{
			"AWS_CONFIG_FILE": filepath.Join(t.TempDir(), "absent"),
		})

		assert.Equal(t, "", awsRegion(sctx, "dev"))
	})

	t.Run("missing section is no region", func(t *testing.T) {
		path := writeAWSConfig(t, `
[profile other]
region = us-west-1
`)
		sctx := awsTestContext(t, map[string]string{"AWS_CONFIG_FILE": path})

		assert.Equal(t, "", awsRegion(sctx, "dev"))
	})
}
