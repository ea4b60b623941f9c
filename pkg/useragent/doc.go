// Package useragent extracts browser, engine and platform facts from
// User-Agent strings.
//
// It identifies:
//   - Version tuples – the ordered "Product/Version (Comment)" segments
//   - Platform – Windows, macOS, iOS (iPhone, iPad, iPod), Android, ChromeOS, Linux
//   - Browser – Opera, IE, Edge, Firefox, Chrome, Coast, Safari, Silk, iOS web views, …
//   - Engine – Presto, Trident, EdgeHTML, WebKit, Gecko
//   - Versions for each of the above, plus a coarse device type
//
// Detection is a fixed cascade of substring checks and pre-compiled regular
// expressions. Nothing here returns an error: a pattern that does not match
// yields "", false or a documented default ("0.0" for Windows without a
// version token, "10" for macOS).
//
// # Architecture
//
// Agent is a plain string type whose methods answer one question each and
// re-derive the answer on every call. Predicates that share tokens exclude
// each other (Chrome agents contain "Safari", Edge agents contain "Chrome"),
// and Browser, Engine and Platform classify an agent into exactly one kind
// through ordered rule tables (classify.go).
//
// Detector is the stateful context object: it holds the active agent
// (a host Navigator plus an optional override), pinned Assumptions and the
// version comparison cache. Snapshot materialises everything into Facts.
//
//	┌───────────┐ agent ┌──────────────┐
//	│ Navigator │──────▶│   Detector   │── override, cache, assumptions
//	└───────────┘       └──────┬───────┘
//	                           │ Agent()
//	          ┌────────────────┼────────────────┐
//	          ▼                ▼                ▼
//	    platform.go       browser.go        engine.go ──► Facts
//
// # Usage
//
// Query a single agent:
//
//	a := useragent.Agent(r.UserAgent())
//	if a.IsChrome() && a.BrowserVersionOrHigher("58") {
//	    // …
//	}
//
// Hold state in a Detector:
//
//	d := useragent.New(useragent.WithNavigator(useragent.RequestNavigator(r)))
//	d.IsVersionOrHigher("537")
//	facts := d.Snapshot()
//
// Or let the middleware do it for every request:
//
//	r := chi.NewRouter()
//	r.Use(useragent.Middleware(useragent.WithRegisterer(prometheus.DefaultRegisterer)))
//	// later: facts, ok := useragent.FromContext(r.Context())
//
// # Version cache
//
// Detector.IsVersionOrHigher caches its answer keyed by the requested
// version only. Changing the agent with SetUserAgent keeps the cached
// answers; call Reset or use WithAgent to start clean.
//
// # Configuration
//
// Assumptions pin facts known ahead of time. LoadAssumptions reads them
// from UA_ASSUME_* environment variables (a .env file is honoured).
package useragent
