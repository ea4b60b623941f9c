package useragent

import (
	"regexp"
	"strconv"
	"strings"
)

// Flags are the coarse browser and platform facts. Unlike the Agent
// predicates they honour Assumptions and never scan the agent for a
// category that is pinned.
type Flags struct {
	Opera    bool `json:"opera" yaml:"opera"`
	IE       bool `json:"ie" yaml:"ie"`
	Edge     bool `json:"edge" yaml:"edge"`
	EdgeOrIE bool `json:"edge_or_ie" yaml:"edge_or_ie"`
	Gecko    bool `json:"gecko" yaml:"gecko"`
	WebKit   bool `json:"webkit" yaml:"webkit"`
	Mobile   bool `json:"mobile" yaml:"mobile"`
	Safari   bool `json:"safari" yaml:"safari"`

	Mac     bool `json:"mac" yaml:"mac"`
	Windows bool `json:"windows" yaml:"windows"`
	Linux   bool `json:"linux" yaml:"linux"`
	X11     bool `json:"x11" yaml:"x11"`
	Android bool `json:"android" yaml:"android"`
	IPhone  bool `json:"iphone" yaml:"iphone"`
	IPad    bool `json:"ipad" yaml:"ipad"`
	IPod    bool `json:"ipod" yaml:"ipod"`
}

// Facts is everything known about one agent at one point in time.
type Facts struct {
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	Browser         BrowserKind  `json:"browser" yaml:"browser"`
	BrowserVersion  string       `json:"browser_version" yaml:"browser_version"`
	Engine          EngineKind   `json:"engine" yaml:"engine"`
	EngineVersion   string       `json:"engine_version" yaml:"engine_version"`
	Platform        PlatformKind `json:"platform" yaml:"platform"`
	PlatformVersion string       `json:"platform_version" yaml:"platform_version"`
	Device          DeviceKind   `json:"device" yaml:"device"`
	BotName         string       `json:"bot_name,omitempty" yaml:"bot_name,omitempty"`

	// NavigatorPlatform is the platform string reported by the host.
	NavigatorPlatform string `json:"navigator_platform,omitempty" yaml:"navigator_platform,omitempty"`

	Flags        Flags   `json:"flags" yaml:"flags"`
	Version      string  `json:"version" yaml:"version"`
	DocumentMode int     `json:"document_mode,omitempty" yaml:"document_mode,omitempty"`
	Tuples       []Tuple `json:"tuples" yaml:"tuples"`
}

// Detect returns the facts of a single agent string, without host
// accessors or assumptions.
func Detect(ua string) Facts {
	return New(WithUserAgent(ua)).Snapshot()
}

// Snapshot materialises the facts of the active agent.
func (d *Detector) Snapshot() Facts {
	a := d.Agent()
	flags := d.flags(a)
	version := d.version(a, flags)

	return Facts{
		UserAgent:         string(a),
		Browser:           a.Browser(),
		BrowserVersion:    a.BrowserVersion(),
		Engine:            a.Engine(),
		EngineVersion:     a.EngineVersion(),
		Platform:          a.Platform(),
		PlatformVersion:   a.PlatformVersion(),
		Device:            a.Device(),
		BotName:           a.BotName(),
		NavigatorPlatform: d.navigatorPlatform(),
		Flags:             flags,
		Version:           version,
		DocumentMode:      d.documentMode(flags, version),
		Tuples:            a.Tuples(),
	}
}

// Flags returns the coarse facts of the active agent.
func (d *Detector) Flags() Flags { return d.flags(d.Agent()) }

func (d *Detector) flags(a Agent) Flags {
	var f Flags

	if d.assume.BrowserKnown() {
		f.Opera = d.assume.Opera
		f.IE = d.assume.IE
		f.Edge = d.assume.Edge
		f.Gecko = d.assume.Gecko
		f.WebKit = d.assume.WebKit || d.assume.MobileWebKit
	} else {
		f.Opera = a.IsOpera()
		f.IE = a.IsIE()
		f.Edge = a.IsEdgeHTML()
		f.Gecko = a.IsGecko()
		f.WebKit = a.IsWebKit()
	}
	f.EdgeOrIE = f.Edge || f.IE
	f.Mobile = d.assume.MobileWebKit || (f.WebKit && a.has("Mobile"))
	f.Safari = f.WebKit

	if d.assume.PlatformKnown() {
		f.Mac = d.assume.Mac
		f.Windows = d.assume.Windows
		f.Linux = d.assume.Linux
		f.X11 = d.assume.X11
		f.Android = d.assume.Android
		f.IPhone = d.assume.IPhone
		f.IPad = d.assume.IPad
		f.IPod = d.assume.IPod
	} else {
		f.Mac = a.IsMacintosh()
		f.Windows = a.IsWindows()
		f.Linux = a.IsLinux() || a.IsChromeOS()
		f.X11 = d.navigator != nil && strings.Contains(d.navigator.AppVersion(), "X11")
		f.Android = a.IsAndroid()
		f.IPhone = a.IsIphone()
		f.IPad = a.IsIpad()
		f.IPod = a.IsIpod()
	}
	return f
}

func (d *Detector) navigatorPlatform() string {
	if d.navigator == nil {
		return ""
	}
	return d.navigator.Platform()
}

var (
	geckoRVRegex       = regexp.MustCompile(`rv:([^\);]+)(\)|;)`)
	edgeVersionRegex   = regexp.MustCompile(`Edge/([\d.]+)`)
	ieLegacyRegex      = regexp.MustCompile(`\b(?:MSIE|rv)[: ]([^\);]+)(\)|;)`)
	webkitVersionRegex = regexp.MustCompile(`WebKit/(\S+)`)
	operaVersionRegex  = regexp.MustCompile(`(?:Version)[ /]?(\S+)`)
)

// Version returns the coarse version of the active agent: the Gecko rv,
// the EdgeHTML or IE version, the WebKit build or the Opera version,
// whichever matches the flags first. For IE a higher document mode
// replaces the reported version.
func (d *Detector) Version() string {
	a := d.Agent()
	return d.version(a, d.flags(a))
}

func (d *Detector) version(a Agent, f Flags) string {
	ua := string(a)

	var version string
	switch {
	case f.Gecko:
		version = submatch(geckoRVRegex, ua)
	case f.Edge:
		version = submatch(edgeVersionRegex, ua)
	case f.IE:
		version = submatch(ieLegacyRegex, ua)
	case f.WebKit:
		version = submatch(webkitVersionRegex, ua)
	case f.Opera:
		version = submatch(operaVersionRegex, ua)
	}

	// IE9 may run in document mode 9 while its agent claims an older
	// version.
	if f.IE && d.document != nil {
		if mode := d.document.DocumentMode(); mode > 0 {
			if v, ok := leadingFloat(version); ok && float64(mode) > v {
				return strconv.Itoa(mode)
			}
		}
	}
	return version
}

// DocumentMode returns the IE document mode of the host page, or 0 when
// the agent is not IE or no document is attached.
func (d *Detector) DocumentMode() int {
	a := d.Agent()
	f := d.flags(a)
	return d.documentMode(f, d.version(a, f))
}

// IsDocumentModeOrHigher reports whether the document mode is at least mode.
func (d *Detector) IsDocumentModeOrHigher(mode int) bool {
	return d.DocumentMode() >= mode
}

func (d *Detector) documentMode(f Flags, version string) int {
	if d.document == nil || !f.IE {
		return 0
	}
	if mode := d.document.DocumentMode(); mode > 0 {
		return mode
	}
	if d.document.CompatMode() == "CSS1Compat" {
		major, _ := leadingInt(version)
		return major
	}
	return 5
}

// leadingFloat parses the longest numeric prefix of s, such as "9.0" in
// "9.0b".
func leadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end, dot := 0, false
	for end < len(s) {
		c := s[end]
		if c == '.' && !dot {
			dot = true
		} else if c < '0' || c > '9' {
			break
		}
		end++
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// leadingInt parses the leading decimal digits of s.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}
