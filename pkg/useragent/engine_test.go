package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uakit/pkg/useragent"
)

func TestEnginePredicates(t *testing.T) {
	t.Parallel()

	type flags struct {
		presto, trident, edge, webkit, gecko bool
	}

	tests := []struct {
		name     string
		ua       string
		expected flags
	}{
		{name: "blink counts as webkit", ua: chromeWindowsUA, expected: flags{webkit: true}},
		{name: "safari", ua: safariMacUA, expected: flags{webkit: true}},
		{name: "gecko", ua: firefoxUA, expected: flags{gecko: true}},
		{name: "trident with like gecko", ua: ie11UA, expected: flags{trident: true}},
		{name: "msie without trident token", ua: ie7UA, expected: flags{trident: true}},
		{name: "edge is not webkit", ua: edgeUA, expected: flags{edge: true}},
		{name: "presto", ua: operaPrestoUA, expected: flags{presto: true}},
		{name: "webkit token is case-insensitive", ua: "Mozilla/5.0 (X11) WEBKIT/1.0 (like Gecko)", expected: flags{webkit: true}},
		{name: "empty", ua: "", expected: flags{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := useragent.Agent(tt.ua)
			assert.Equal(t, tt.expected, flags{
				presto:  a.IsPresto(),
				trident: a.IsTrident(),
				edge:    a.IsEdgeHTML(),
				webkit:  a.IsWebKit(),
				gecko:   a.IsGecko(),
			})
		})
	}
}

func TestEngineVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{name: "webkit second tuple", ua: chromeWindowsUA, expected: "537.36"},
		{name: "safari ipad", ua: safariIpadUA, expected: "601.1"},
		{name: "gecko reports firefox version", ua: firefoxUA, expected: "89.0"},
		{name: "gecko without firefox", ua: caminoUA, expected: ""},
		{name: "edge tuple", ua: edgeUA, expected: "12.246"},
		{name: "presto", ua: operaPrestoUA, expected: "2.10.229"},
		{name: "trident from comment", ua: ie11UA, expected: "7.0"},
		{name: "trident compat mode", ua: ie7CompatUA, expected: "5.0"},
		{name: "msie without trident", ua: ie7UA, expected: ""},
		{name: "edge without edge tuple", ua: "Edge", expected: ""},
		{name: "empty", ua: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, useragent.Agent(tt.ua).EngineVersion())
		})
	}
}

func TestEngineVersionOrHigher(t *testing.T) {
	t.Parallel()

	a := useragent.Agent(chromeWindowsUA)
	assert.True(t, a.EngineVersionOrHigher("537"))
	assert.True(t, a.EngineVersionOrHigher("537.36"))
	assert.False(t, a.EngineVersionOrHigher("537.37"))
}
