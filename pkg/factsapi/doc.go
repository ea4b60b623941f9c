// Package factsapi exposes user-agent detection over HTTP.
//
// Routes:
//
//	GET  /facts           facts of the caller's agent, or of ?ua=...
//	POST /facts           {"user_agents": [...]} -> {"facts": [...]}
//	GET  /healthz         liveness probe
//	GET  /metrics         Prometheus metrics, when a registry is configured
//
// Every request passes through useragent.Middleware, so the request counter
// and the facts cache are shared with any other handler mounted on the
// router. Requests are tagged with an X-Request-ID (kept when valid, else a
// UUIDv7) and logged once served.
package factsapi
