package useragent

import (
	"net/http"
	"strings"
)

// StaticNavigator is a Navigator with fixed values.
type StaticNavigator struct {
	Agent       string
	PlatformStr string
	AppVer      string
}

func (n StaticNavigator) UserAgent() string  { return n.Agent }
func (n StaticNavigator) Platform() string   { return n.PlatformStr }
func (n StaticNavigator) AppVersion() string { return n.AppVer }

// RequestNavigator exposes the agent facts of an HTTP request: the
// User-Agent header, the Sec-CH-UA-Platform client hint as platform and,
// like browsers do, the agent without its "Mozilla/" prefix as app version.
// A nil request yields an empty navigator.
func RequestNavigator(r *http.Request) Navigator {
	if r == nil {
		return StaticNavigator{}
	}
	ua := r.UserAgent()
	return StaticNavigator{
		Agent:       ua,
		PlatformStr: strings.Trim(r.Header.Get("Sec-CH-UA-Platform"), `"`),
		AppVer:      strings.TrimPrefix(ua, "Mozilla/"),
	}
}
