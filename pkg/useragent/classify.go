package useragent

import "sort"

// rule maps a predicate to the kind it identifies. Rules are evaluated in
// OrderHint order and the first match wins, so exactly one kind is
// reported per category even when several predicates hold.
type rule[K ~string] struct {
	Kind      K
	Match     func(Agent) bool
	OrderHint int
}

// Browser rules. Browsers whose agents embed another browser's token come
// before the browser they imitate.
var browserRules = []rule[BrowserKind]{
	{Kind: BrowserOpera, Match: Agent.IsOpera, OrderHint: 10},
	{Kind: BrowserEdge, Match: Agent.IsEdge, OrderHint: 20},
	{Kind: BrowserIE, Match: Agent.IsIE, OrderHint: 30},
	{Kind: BrowserSilk, Match: Agent.IsSilk, OrderHint: 40},
	{Kind: BrowserCoast, Match: Agent.IsCoast, OrderHint: 50},
	{Kind: BrowserFirefox, Match: Agent.IsFirefox, OrderHint: 60},
	{Kind: BrowserChrome, Match: Agent.IsChrome, OrderHint: 70},
	{Kind: BrowserAndroidBrowser, Match: Agent.IsAndroidBrowser, OrderHint: 80},
	{Kind: BrowserSafari, Match: Agent.IsSafari, OrderHint: 90},
	{Kind: BrowserIosWebview, Match: Agent.IsIosWebview, OrderHint: 100},
}

var engineRules = []rule[EngineKind]{
	{Kind: EngineEdgeHTML, Match: Agent.IsEdgeHTML, OrderHint: 10},
	{Kind: EngineTrident, Match: Agent.IsTrident, OrderHint: 20},
	{Kind: EnginePresto, Match: Agent.IsPresto, OrderHint: 30},
	{Kind: EngineWebKit, Match: Agent.IsWebKit, OrderHint: 40},
	{Kind: EngineGecko, Match: Agent.IsGecko, OrderHint: 50},
}

// Platform rules follow the priority PlatformVersion uses.
var platformRules = []rule[PlatformKind]{
	{Kind: PlatformWindows, Match: Agent.IsWindows, OrderHint: 10},
	{Kind: PlatformIphone, Match: Agent.IsIphone, OrderHint: 20},
	{Kind: PlatformIpad, Match: Agent.IsIpad, OrderHint: 21},
	{Kind: PlatformIpod, Match: Agent.IsIpod, OrderHint: 22},
	{Kind: PlatformMacintosh, Match: Agent.IsMacintosh, OrderHint: 30},
	{Kind: PlatformAndroid, Match: Agent.IsAndroid, OrderHint: 40},
	{Kind: PlatformChromeOS, Match: Agent.IsChromeOS, OrderHint: 50},
	{Kind: PlatformLinux, Match: Agent.IsLinux, OrderHint: 60},
}

func init() {
	sortRules(browserRules)
	sortRules(engineRules)
	sortRules(platformRules)
}

func sortRules[K ~string](rules []rule[K]) {
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].OrderHint < rules[j].OrderHint
	})
}

func classify[K ~string](a Agent, rules []rule[K], fallback K) K {
	for _, r := range rules {
		if r.Match(a) {
			return r.Kind
		}
	}
	return fallback
}

// Browser returns the single browser family of the agent.
func (a Agent) Browser() BrowserKind {
	return classify(a, browserRules, BrowserUnknown)
}

// Engine returns the single rendering engine of the agent.
func (a Agent) Engine() EngineKind {
	return classify(a, engineRules, EngineUnknown)
}

// Platform returns the single platform of the agent.
func (a Agent) Platform() PlatformKind {
	return classify(a, platformRules, PlatformUnknown)
}
