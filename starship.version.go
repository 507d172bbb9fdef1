package starship

import (
	"strings"

	"github.com/itsatony/go-cuserr"
)

// FormatVersion renders a tool version through a module's version format.
// The format may reference ${raw} (the version as reported), ${major},
// ${minor}, and ${patch}. Missing components substitute as empty strings.
func FormatVersion(module, raw, format string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", cuserr.NewValidationError(ErrCodeEval, ErrMsgVersionEmpty).
			WithMetadata(MetaKeyCode, ErrCodeEval).
			WithMetadata(MetaKeyModule, module)
	}
	if format == "" {
		format = DefaultVersionFormat
	}

	parts := strings.SplitN(strings.TrimPrefix(raw, "v"), ".", 3)
	component := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}

	replacer := strings.NewReplacer(
		VersionPlaceholderRaw, raw,
		VersionPlaceholderMajor, component(0),
		VersionPlaceholderMinor, component(1),
		VersionPlaceholderPatch, component(2),
	)
	return replacer.Replace(format), nil
}
