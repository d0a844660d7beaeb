// Package match compares observed callback owner identities against target
// class names.
package match

import "strings"

// Options control how a class identity is compared against a target name.
type Options struct {
	// Strict requires full equality; otherwise the target only has to be
	// a substring of the observed identity.
	Strict bool

	// CaseSensitive compares without case folding.
	CaseSensitive bool
}

// DefaultOptions returns exact matching: strict and case-sensitive.
func DefaultOptions() Options {
	return Options{Strict: true, CaseSensitive: true}
}

// Class reports whether the observed owner identity matches the target
// class name under the given options.
func Class(observed, target string, opts Options) bool {
	switch {
	case opts.Strict && opts.CaseSensitive:
		return observed == target
	case opts.Strict:
		return strings.EqualFold(observed, target)
	case opts.CaseSensitive:
		return strings.Contains(observed, target)
	default:
		return strings.Contains(strings.ToLower(observed), strings.ToLower(target))
	}
}
