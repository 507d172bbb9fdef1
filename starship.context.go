package starship

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Context carries the per-invocation environment modules read from: the
// working directory, environment variables (overridable for tests), and a
// bounded subprocess runner. The rendering engine itself never touches any
// of this; it is handed to modules only.
type Context struct {
	dir     string
	env     map[string]string
	timeout time.Duration
	logger  *zap.Logger
}

// ContextOption is a functional option for configuring a Context.
type ContextOption func(*Context)

// WithEnv overrides environment lookups with the given map. Lookups miss
// entirely for names absent from the map.
func WithEnv(env map[string]string) ContextOption {
	return func(c *Context) {
		c.env = env
	}
}

// WithCommandTimeout bounds subprocess invocations.
// Default: DefaultCommandTimeout
func WithCommandTimeout(timeout time.Duration) ContextOption {
	return func(c *Context) {
		c.timeout = timeout
	}
}

// WithContextLogger sets the logger for the context.
// Default: nil (no logging)
func WithContextLogger(logger *zap.Logger) ContextOption {
	return func(c *Context) {
		c.logger = logger
	}
}

// NewContext creates a Context rooted at the given working directory
func NewContext(dir string, opts ...ContextOption) *Context {
	c := &Context{
		dir:     dir,
		timeout: DefaultCommandTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

// Dir returns the working directory this context is rooted at
func (c *Context) Dir() string {
	return c.dir
}

// Logger returns the context's logger
func (c *Context) Logger() *zap.Logger {
	return c.logger
}

// GetEnv looks up an environment variable, honoring test overrides
func (c *Context) GetEnv(name string) (string, bool) {
	if c.env != nil {
		value, ok := c.env[name]
		return value, ok
	}
	return os.LookupEnv(name)
}

// HomeDir returns the user's home directory, honoring a HOME override
func (c *Context) HomeDir() (string, error) {
	if c.env != nil {
		if home, ok := c.env["HOME"]; ok {
			return home, nil
		}
	}
	return os.UserHomeDir()
}

// ExecCmd runs a command bounded by the context's timeout and returns its
// trimmed stdout. The engine treats these calls as opaque and potentially
// failing; the timeout lives here, not in the evaluator.
func (c *Context) ExecCmd(ctx context.Context, name string, args ...string) (string, error) {
	cmdCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	cmd := exec.CommandContext(cmdCtx, name, args...)
	cmd.Dir = c.dir
	out, err := cmd.Output()
	if err != nil {
		c.logger.Debug(LogMsgCommandFailed,
			zap.String(LogFieldCommand, name),
			zap.Duration(LogFieldDuration, time.Since(start)),
			zap.Error(err))
		return "", NewCommandError(name, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// DirScan is a builder for project detection over the context's working
// directory, matching by file names, extensions, or folder names.
type DirScan struct {
	context    *Context
	files      []string
	extensions []string
	folders    []string
}

// Scan begins a directory scan against the context's working directory
func (c *Context) Scan() *DirScan {
	return &DirScan{context: c}
}

// SetFiles sets the exact file names to detect
func (s *DirScan) SetFiles(files []string) *DirScan {
	s.files = files
	return s
}

// SetExtensions sets the file extensions (without dot) to detect
func (s *DirScan) SetExtensions(extensions []string) *DirScan {
	s.extensions = extensions
	return s
}

// SetFolders sets the folder names to detect
func (s *DirScan) SetFolders(folders []string) *DirScan {
	s.folders = folders
	return s
}

// IsMatch reports whether the working directory contains any of the
// configured files, extensions, or folders. An unreadable directory is
// simply no match.
func (s *DirScan) IsMatch() bool {
	entries, err := os.ReadDir(s.context.dir)
	if err != nil {
		return false
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			if containsString(s.folders, name) {
				return true
			}
			continue
		}
		if containsString(s.files, name) {
			return true
		}
		ext := strings.TrimPrefix(filepath.Ext(name), ".")
		if ext != "" && containsString(s.extensions, ext) {
			return true
		}
	}
	return false
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
