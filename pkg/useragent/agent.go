package useragent

import (
	"strings"

	"golang.org/x/text/cases"
)

// Agent is a raw user-agent string. Every method re-derives its answer from
// the string itself, so an Agent is safe to copy and share.
type Agent string

// String returns the raw agent string.
func (a Agent) String() string { return string(a) }

// Tuples returns the ordered version tuples found in the agent.
func (a Agent) Tuples() []Tuple { return ExtractTuples(string(a)) }

// has reports a case-sensitive substring match.
func (a Agent) has(s string) bool {
	return strings.Contains(string(a), s)
}

// hasFold reports a case-insensitive substring match using Unicode case
// folding. Casers keep state, so one is created per call.
func (a Agent) hasFold(s string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(string(a)), fold.String(s))
}

// hasAny reports whether any of the given tokens is present.
func (a Agent) hasAny(tokens ...string) bool {
	for _, t := range tokens {
		if a.has(t) {
			return true
		}
	}
	return false
}
