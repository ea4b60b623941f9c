package useragent

import (
	"io"
	"log/slog"
	"reflect"
	"sync"

	"github.com/dmitrymomot/uakit/pkg/vercmp"
)

// Navigator is the host accessor a Detector reads the native agent from,
// modelled after the browser's navigator object.
type Navigator interface {
	UserAgent() string
	Platform() string
	AppVersion() string
}

// Document exposes the Internet Explorer document mode of the host page.
// DocumentMode returns 0 when the host has none.
type Document interface {
	DocumentMode() int
	CompatMode() string
}

// Option configures a Detector.
type Option func(*Detector)

// WithUserAgent sets an initial override agent.
func WithUserAgent(ua string) Option {
	return func(d *Detector) { d.override = ua }
}

// WithNavigator sets the host accessor for the native agent. Nil, including
// a nil pointer behind the interface, is ignored.
func WithNavigator(n Navigator) Option {
	return func(d *Detector) {
		if !isNil(n) {
			d.navigator = n
		}
	}
}

// WithDocument sets the host document used for IE document modes. Nil is
// ignored like in WithNavigator.
func WithDocument(doc Document) Option {
	return func(d *Detector) {
		if !isNil(doc) {
			d.document = doc
		}
	}
}

// isNil reports a nil interface or an interface holding a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// WithAssumptions pins known browser or platform facts.
func WithAssumptions(a Assumptions) Option {
	return func(d *Detector) { d.assume = a }
}

// WithLogger sets the logger used for debug output. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(d *Detector) {
		if l != nil {
			d.log = l
		}
	}
}

// Detector holds the active agent string and the version comparison cache.
// It replaces process-wide state: every test or request can own one.
// A Detector is safe for concurrent use.
type Detector struct {
	mu       sync.RWMutex
	override string

	navigator Navigator
	document  Document
	assume    Assumptions
	log       *slog.Logger

	cacheMu      sync.Mutex
	versionCache map[string]bool
}

// New creates a Detector. Without a navigator or override the agent is
// empty and every predicate reports false.
func New(opts ...Option) *Detector {
	d := &Detector{
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		versionCache: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithAgent returns an independent Detector sharing the host accessors and
// assumptions but with its own override and an empty comparison cache.
func (d *Detector) WithAgent(ua string) *Detector {
	return New(
		WithNavigator(d.navigator),
		WithDocument(d.document),
		WithAssumptions(d.assume),
		WithLogger(d.log),
		WithUserAgent(ua),
	)
}

// SetUserAgent overrides the active agent. An empty string restores the
// native agent of the navigator. The comparison cache is kept.
func (d *Detector) SetUserAgent(ua string) {
	d.mu.Lock()
	d.override = ua
	d.mu.Unlock()
	d.log.Debug("user agent override changed", slog.String("user_agent", ua))
}

// UserAgent returns the active agent string: the override when set,
// otherwise the native agent.
func (d *Detector) UserAgent() string {
	d.mu.RLock()
	ua := d.override
	d.mu.RUnlock()
	if ua != "" {
		return ua
	}
	return d.nativeUserAgent()
}

// Agent returns the active agent. Predicates on the returned value are
// unaffected by later overrides.
func (d *Detector) Agent() Agent { return Agent(d.UserAgent()) }

// Reset drops the override and clears the comparison cache.
func (d *Detector) Reset() {
	d.mu.Lock()
	d.override = ""
	d.mu.Unlock()

	d.cacheMu.Lock()
	clear(d.versionCache)
	d.cacheMu.Unlock()
	d.log.Debug("user agent detector reset")
}

func (d *Detector) nativeUserAgent() string {
	if d.navigator == nil {
		return ""
	}
	return d.navigator.UserAgent()
}

// CompareVersions compares two version strings, see vercmp.Compare.
func CompareVersions(a, b string) int {
	return vercmp.Compare(a, b)
}

// IsVersionOrHigher reports whether the detected version (see Version) is
// at least version. Results are cached by the version argument alone and
// never evicted: after SetUserAgent a cached answer is returned unchanged
// even though the agent differs. Use Reset or WithAgent for fresh answers.
func (d *Detector) IsVersionOrHigher(version string) bool {
	if d.assume.AnyVersion {
		return true
	}

	d.cacheMu.Lock()
	defer d.cacheMu.Unlock()

	if ok, cached := d.versionCache[version]; cached {
		d.log.Debug("version comparison cache hit", slog.String("version", version), slog.Bool("result", ok))
		return ok
	}

	ok := vercmp.AtLeast(d.Version(), version)
	d.versionCache[version] = ok
	return ok
}
