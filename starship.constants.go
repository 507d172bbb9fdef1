package starship

import "time"

// Metadata key constants for error context
const (
	MetaKeyLine     = "line"
	MetaKeyColumn   = "column"
	MetaKeyOffset   = "offset"
	MetaKeyVariable = "variable"
	MetaKeyKeyword  = "keyword"
	MetaKeyModule   = "module"
	MetaKeyFormat   = "format"
	MetaKeyCommand  = "command"
	MetaKeyPreset   = "preset"
	MetaKeyValue    = "value"
	MetaKeyCode     = "error_code"
)

// Error code constants for categorization
const (
	ErrCodeParse  = "STARSHIP_PARSE"
	ErrCodeEval   = "STARSHIP_EVAL"
	ErrCodeStyle  = "STARSHIP_STYLE"
	ErrCodeConfig = "STARSHIP_CONFIG"
	ErrCodeExec   = "STARSHIP_EXEC"
)

// Well-known variable names shared by the bundled modules
const (
	VarSymbol  = "symbol"
	VarStyle   = "style"
	VarVersion = "version"
	VarProfile = "profile"
	VarRegion  = "region"
)

// Module name constants
const (
	ModuleNameAWS  = "aws"
	ModuleNamePerl = "perl"
	ModuleNamePony = "pony"
)

// Command execution defaults
const (
	DefaultCommandTimeout = 500 * time.Millisecond
)

// Version format placeholder constants
const (
	VersionPlaceholderRaw   = "${raw}"
	VersionPlaceholderMajor = "${major}"
	VersionPlaceholderMinor = "${minor}"
	VersionPlaceholderPatch = "${patch}"
	DefaultVersionFormat    = "v${raw}"
)

// Log message constants
const (
	LogMsgModuleFailed     = "module rendering failed"
	LogMsgModuleFallback   = "format failed to parse, using fallback"
	LogMsgConfigLoaded     = "configuration loaded"
	LogMsgPresetApplied    = "preset applied"
	LogMsgPromptRendered   = "prompt rendered"
	LogMsgCommandFailed    = "command execution failed"
	LogMsgConfigLoadFailed = "configuration load failed, using defaults"
)

// Log field name constants
const (
	LogFieldModule   = "module"
	LogFieldError    = "error"
	LogFieldFormat   = "format"
	LogFieldPreset   = "preset"
	LogFieldModules  = "modules"
	LogFieldPath     = "path"
	LogFieldCommand  = "command"
	LogFieldDuration = "duration"
)
