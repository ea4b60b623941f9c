package useragent

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/uakit/pkg/vercmp"
)

var (
	windowsVersionRegex  = regexp.MustCompile(`Windows (?:NT|Phone) ([0-9.]+)`)
	iosVersionRegex      = regexp.MustCompile(`(?:iPhone|iPod|iPad|CPU)\s+OS\s+(\S+)`)
	macVersionRegex      = regexp.MustCompile(`Mac OS X ([0-9_.]+)`)
	androidVersionRegex  = regexp.MustCompile(`Android\s+([^\);]+)(\)|;)`)
	chromeOSVersionRegex = regexp.MustCompile(`CrOS\s+(?:i686|x86_64)\s+([0-9.]+)`)
)

// IsAndroid reports an Android device.
func (a Agent) IsAndroid() bool { return a.has("Android") }

// IsIpod reports an iPod touch.
func (a Agent) IsIpod() bool { return a.has("iPod") }

// IsIphone reports an iPhone. iPod and iPad agents sometimes carry the
// iPhone token as well and are not counted.
func (a Agent) IsIphone() bool {
	return a.has("iPhone") && !a.has("iPod") && !a.has("iPad")
}

// IsIpad reports an iPad.
func (a Agent) IsIpad() bool { return a.has("iPad") }

// IsIos reports any Apple mobile device.
func (a Agent) IsIos() bool {
	return a.IsIphone() || a.IsIpad() || a.IsIpod()
}

// IsMacintosh reports a Mac desktop.
func (a Agent) IsMacintosh() bool { return a.has("Macintosh") }

// IsLinux reports any Linux agent, Android included.
func (a Agent) IsLinux() bool { return a.has("Linux") }

// IsWindows reports a Windows agent.
func (a Agent) IsWindows() bool { return a.has("Windows") }

// IsChromeOS reports a Chromebook.
func (a Agent) IsChromeOS() bool { return a.has("CrOS") }

// PlatformVersion returns the operating system version, or "" when it
// cannot be determined. Windows without an NT or Phone token reports "0.0"
// and macOS without a version reports "10".
func (a Agent) PlatformVersion() string {
	ua := string(a)

	switch {
	case a.IsWindows():
		if v := submatch(windowsVersionRegex, ua); v != "" {
			return v
		}
		return "0.0"
	case a.IsIos():
		return underscoresToDots(submatch(iosVersionRegex, ua))
	case a.IsMacintosh():
		if v := submatch(macVersionRegex, ua); v != "" {
			return underscoresToDots(v)
		}
		return "10"
	case a.IsAndroid():
		return submatch(androidVersionRegex, ua)
	case a.IsChromeOS():
		return submatch(chromeOSVersionRegex, ua)
	}
	return ""
}

// PlatformVersionOrHigher reports whether the platform version is at least
// version.
func (a Agent) PlatformVersionOrHigher(version string) bool {
	return vercmp.AtLeast(a.PlatformVersion(), version)
}

// submatch returns the first capture group of re in s, or "".
func submatch(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if len(m) > 1 {
		return m[1]
	}
	return ""
}

func underscoresToDots(v string) string {
	return strings.ReplaceAll(v, "_", ".")
}
