// Package starship renders a shell prompt by evaluating independent modules
// and assembling their output through a small format mini-language.
//
// A format string mixes literal text, $name variable references, and styled
// groups:
//
//	via [$symbol$version]($style)
//
// # Format Syntax
//
// Variables: $name, where name is an alphanumeric/underscore identifier.
//
// Groups: [display](style). The display span may nest further groups; the
// style span is a flat, whitespace-separated list of style keywords and
// $name style-variable references. A group whose referenced variables all
// fail to resolve is elided entirely, style wrapper included.
//
// Escapes: $$, \$, \[, \], \( and \) render the literal character.
//
// # Basic Usage
//
// Parse a format once, register resolvers, then render:
//
//	f, err := starship.NewFormatter("via [$symbol$version]($style) ")
//	if err != nil {
//	    // malformed format string
//	}
//	segments, err := f.
//	    MapMeta(func(name string) (string, bool) {
//	        if name == "symbol" {
//	            return "🐪 ", true
//	        }
//	        return "", false
//	    }).
//	    MapStyle(func(name string) starship.ResolvedValue {
//	        if name == "style" {
//	            return starship.ResolveText("bold yellow")
//	        }
//	        return starship.ResolveAbsent()
//	    }).
//	    Map(func(name string) starship.ResolvedValue {
//	        if name == "version" {
//	            return starship.ResolveText("v5.26.1")
//	        }
//	        return starship.ResolveAbsent()
//	    }).
//	    Render(ctx)
//
// Each segment pairs text with an opaque style spec; RenderSegments turns the
// sequence into an ANSI-styled string.
//
// # Resolution
//
// For a content variable the meta resolver is consulted first (icons and
// other plain substitutions), then the value resolver. A value resolver may
// be registered as a synchronous function (Map) or an asynchronous one
// (AsyncMap); async lookups for a render are gathered and awaited as a batch
// before the synchronous walk produces segments, so segment order never
// depends on completion order.
//
// # Errors
//
// Parse errors carry line/column/offset metadata. Any resolver failure
// aborts the whole render for that module; the module orchestrator logs a
// warning and omits the module rather than rendering partially.
package starship
