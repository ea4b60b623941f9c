package useragent

import (
	"regexp"

	"github.com/dmitrymomot/uakit/pkg/vercmp"
)

// The browser predicates exclude competing browsers whose agents share
// tokens: Chrome agents contain "Safari", Edge agents contain "Chrome",
// Android Chrome contains "Android" and so on.

// IsOpera reports Presto-based Opera. Chromium-based Opera 15+ does not
// carry the "Opera" token and is reported as Chrome.
func (a Agent) IsOpera() bool { return a.has("Opera") }

// IsIE reports Internet Explorer.
func (a Agent) IsIE() bool { return a.hasAny("Trident", "MSIE") }

// IsEdge reports EdgeHTML-based Microsoft Edge.
func (a Agent) IsEdge() bool { return a.has("Edge") }

func (a Agent) IsFirefox() bool { return a.has("Firefox") }

// IsChrome reports Chrome, including Chrome for iOS (CriOS).
func (a Agent) IsChrome() bool {
	return a.hasAny("Chrome", "CriOS") && !a.IsEdge()
}

// IsCoast reports Opera Coast for iOS.
func (a Agent) IsCoast() bool { return a.has("Coast") }

// IsSafari reports desktop or mobile Safari.
func (a Agent) IsSafari() bool {
	return a.has("Safari") &&
		!(a.IsChrome() || a.IsCoast() || a.IsOpera() || a.IsEdge() || a.IsSilk() || a.has("Android"))
}

// IsIosWebview reports an embedded iOS web view, which identifies as
// neither Safari nor Chrome.
func (a Agent) IsIosWebview() bool {
	return a.hasAny("iPad", "iPhone") &&
		!a.IsSafari() && !a.IsChrome() && !a.IsCoast() &&
		a.has("AppleWebKit")
}

// IsAndroidBrowser reports the stock Android browser.
func (a Agent) IsAndroidBrowser() bool {
	return a.has("Android") &&
		!(a.IsChrome() || a.IsFirefox() || a.IsOpera() || a.IsSilk())
}

// IsSilk reports Amazon Silk.
func (a Agent) IsSilk() bool { return a.has("Silk") }

// BrowserVersion returns the browser version, or "" when unknown.
func (a Agent) BrowserVersion() string {
	// IE keeps its version inside the parenthetical, without a slash.
	if a.IsIE() {
		return ieVersion(string(a))
	}

	tuples := a.Tuples()
	versions := newVersionMap(tuples)

	// Opera and Edge carry a Chrome token, check them first.
	switch {
	case a.IsOpera():
		// Opera 10 reports Opera/9.8 with the real number in Version/10.0.
		return versions.lookup("Version", "Opera")
	case a.IsEdge():
		return versions.lookup("Edge")
	case a.IsChrome():
		return versions.lookup("Chrome", "CriOS")
	}

	// Usually the product follows "Mozilla" and the engine.
	if len(tuples) > 2 {
		return tuples[2].Version
	}
	return ""
}

// BrowserVersionOrHigher reports whether the browser version is at least
// version.
func (a Agent) BrowserVersionOrHigher(version string) bool {
	return vercmp.AtLeast(a.BrowserVersion(), version)
}

var (
	ieRVRegex      = regexp.MustCompile(`rv:\s*([\d.]*)`)
	ieMSIERegex    = regexp.MustCompile(`MSIE\s+([\d.]+)`)
	ieTridentRegex = regexp.MustCompile(`Trident/(\d.\d)`)
)

// Compatibility mode reports MSIE 7.0; the Trident token tells the real
// version.
var tridentToIE = map[string]string{
	"4.0": "8.0",
	"5.0": "9.0",
	"6.0": "10.0",
	"7.0": "11.0",
}

// ieVersion resolves the Internet Explorer version. IE11 may claim to be
// MSIE 9.0 or 10.0, so the rv: token wins when present.
func ieVersion(ua string) string {
	if rv := submatch(ieRVRegex, ua); rv != "" {
		return rv
	}

	msie := submatch(ieMSIERegex, ua)
	if msie == "" {
		return ""
	}
	if msie != "7.0" {
		return msie
	}

	trident := submatch(ieTridentRegex, ua)
	if trident == "" {
		return "7.0"
	}
	return tridentToIE[trident]
}
