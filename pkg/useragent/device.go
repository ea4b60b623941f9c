package useragent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// keywordSet optimizes keyword lookups using map structure for O(1) access
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// Lower-case keyword sets. Bot detection includes social media crawlers
// and monitoring tools.
var (
	botKeywords     = newKeywordSet("bot", "spider", "crawler", "archiver", "slurp", "lighthouse", "facebookexternalhit", "whatsapp", "validator", "fetcher", "scraper", "monitor")
	tvKeywords      = newKeywordSet("smarttv", "smart-tv", "googletv", "appletv", "android tv", "webos", "tizen", "hbbtv")
	consoleKeywords = newKeywordSet("playstation", "xbox", "nintendo", "wiiu")
	tabletKeywords  = newKeywordSet("tablet", "kindle", "silk", "kftt", "kfjwi")
	mobileKeywords  = newKeywordSet("mobile", "windows phone", "iemobile", "blackberry", "nokia", "opera mini")
)

// Device classifies the kind of device that sent the agent. Apple and
// Android devices are recognised through the platform predicates; other
// kinds fall back to keyword matching.
func (a Agent) Device() DeviceKind {
	if a == "" {
		return DeviceUnknown
	}
	lowerUA := strings.ToLower(string(a))

	switch {
	case a.IsIpad():
		return DeviceTablet
	case a.IsIphone(), a.IsIpod():
		return DeviceMobile
	case botKeywords.contains(lowerUA):
		return DeviceBot
	case tvKeywords.contains(lowerUA):
		return DeviceTV
	case consoleKeywords.contains(lowerUA):
		return DeviceConsole
	case a.IsAndroid():
		// Android tablets omit the Mobile token, phones carry it.
		if strings.Contains(lowerUA, "mobile") {
			return DeviceMobile
		}
		return DeviceTablet
	case tabletKeywords.contains(lowerUA):
		return DeviceTablet
	case mobileKeywords.contains(lowerUA):
		return DeviceMobile
	case a.IsWindows() && strings.Contains(lowerUA, "touch"):
		return DeviceTablet
	case a.IsWindows(), a.IsMacintosh(), a.IsChromeOS(), a.IsLinux(), strings.Contains(lowerUA, "x11"):
		return DeviceDesktop
	}
	return DeviceUnknown
}

// IsBot reports whether the agent belongs to a crawler.
func (a Agent) IsBot() bool { return a.Device() == DeviceBot }

// Common bots, checked before the generic patterns.
var botNames = []struct{ keyword, name string }{
	{"googlebot", "Googlebot"},
	{"bingbot", "Bingbot"},
	{"yandexbot", "YandexBot"},
	{"baiduspider", "Baiduspider"},
	{"duckduckbot", "DuckDuckBot"},
	{"twitterbot", "Twitterbot"},
	{"facebookexternalhit", "Facebook"},
	{"linkedinbot", "LinkedInBot"},
	{"slackbot", "Slackbot"},
	{"telegrambot", "TelegramBot"},
	{"applebot", "Applebot"},
}

var botNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([a-z0-9\-_]+bot)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+spider)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+crawler)`),
}

// BotName returns a display name for a crawler agent, or "" when the agent
// is not a bot.
func (a Agent) BotName() string {
	if !a.IsBot() {
		return ""
	}
	lowerUA := strings.ToLower(string(a))

	for _, b := range botNames {
		if strings.Contains(lowerUA, b.keyword) {
			return b.name
		}
	}

	for _, pattern := range botNamePatterns {
		if name := submatch(pattern, string(a)); name != "" {
			return cases.Title(language.English).String(strings.ToLower(name))
		}
	}
	return "Unknown Bot"
}
