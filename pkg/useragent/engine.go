package useragent

import (
	"regexp"

	"github.com/dmitrymomot/uakit/pkg/vercmp"
)

// IsPresto reports the Presto engine of classic Opera.
func (a Agent) IsPresto() bool { return a.has("Presto") }

// IsTrident reports the Trident engine. IE only started to include the
// Trident token with IE8, so MSIE counts as well.
func (a Agent) IsTrident() bool { return a.hasAny("Trident", "MSIE") }

// IsEdgeHTML reports the EdgeHTML engine.
func (a Agent) IsEdgeHTML() bool { return a.has("Edge") }

// IsWebKit reports WebKit or Blink. The token is matched case-insensitively.
func (a Agent) IsWebKit() bool {
	return a.hasFold("WebKit") && !a.IsEdgeHTML()
}

// IsGecko reports Gecko. Most engines say "like Gecko", so they are
// excluded explicitly.
func (a Agent) IsGecko() bool {
	return a.has("Gecko") && !a.IsWebKit() && !a.IsTrident() && !a.IsEdgeHTML()
}

var tridentCommentRegex = regexp.MustCompile(`Trident/([^\s;]+)`)

// EngineVersion returns the rendering engine version, or "" when unknown.
func (a Agent) EngineVersion() string {
	if a == "" {
		return ""
	}

	tuples := a.Tuples()
	if engine, ok := a.engineTuple(tuples); ok {
		// Gecko's own tuple carries a build date; the human version is
		// the Firefox one.
		if engine.Product == "Gecko" {
			return versionForKey(tuples, "Firefox")
		}
		return engine.Version
	}

	// MSIE only has the Trident version inside the first parenthetical.
	if len(tuples) > 0 && tuples[0].Comment != "" {
		return submatch(tridentCommentRegex, tuples[0].Comment)
	}
	return ""
}

// EngineVersionOrHigher reports whether the engine version is at least
// version.
func (a Agent) EngineVersionOrHigher(version string) bool {
	return vercmp.AtLeast(a.EngineVersion(), version)
}

// engineTuple returns the tuple describing the engine: the second tuple in
// general, the Edge tuple for EdgeHTML.
func (a Agent) engineTuple(tuples []Tuple) (Tuple, bool) {
	if !a.IsEdgeHTML() {
		if len(tuples) > 1 {
			return tuples[1], true
		}
		return Tuple{}, false
	}
	for _, t := range tuples {
		if t.Product == "Edge" {
			return t, true
		}
	}
	return Tuple{}, false
}
