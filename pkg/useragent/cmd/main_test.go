package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/uakit/pkg/httpserver"
	"github.com/dmitrymomot/uakit/pkg/logger"
	"github.com/dmitrymomot/uakit/pkg/useragent"
)

const (
	chromeUA  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36"
	firefoxUA = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_JSON(t *testing.T) {
	out, err := execute(t, "", "--format", "json", "--platform", "Win32", chromeUA)
	require.NoError(t, err)

	var f useragent.Facts
	require.NoError(t, json.Unmarshal([]byte(out), &f))
	assert.Equal(t, useragent.BrowserChrome, f.Browser)
	assert.Equal(t, "58.0.3029.110", f.BrowserVersion)
	assert.Equal(t, useragent.PlatformWindows, f.Platform)
	assert.Equal(t, "Win32", f.NavigatorPlatform)
}

func TestRootCmd_YAMLFromStdin(t *testing.T) {
	out, err := execute(t, chromeUA+"\n\n"+firefoxUA+"\n")
	require.NoError(t, err)

	dec := yaml.NewDecoder(strings.NewReader(out))
	var got []useragent.Facts
	for {
		var f useragent.Facts
		err := dec.Decode(&f)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, f)
	}

	require.Len(t, got, 2)
	assert.Equal(t, useragent.BrowserChrome, got[0].Browser)
	assert.Equal(t, useragent.BrowserFirefox, got[1].Browser)
	assert.Equal(t, "89.0", got[1].Version)
	assert.True(t, got[1].Flags.X11)
	assert.Equal(t, "Mozilla", got[1].Tuples[0].Product)
}

func TestRootCmd_Errors(t *testing.T) {
	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, "", "--format", "xml", chromeUA)
		assert.ErrorContains(t, err, `unknown format "xml"`)
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, err := execute(t, "", "--log-level", "loud", chromeUA)
		assert.ErrorIs(t, err, logger.ErrInvalidLevel)
	})

	t.Run("invalid log format", func(t *testing.T) {
		_, err := execute(t, "", "--log-format", "xml", chromeUA)
		assert.ErrorIs(t, err, logger.ErrInvalidFormat)
	})

	t.Run("conflicting assumptions", func(t *testing.T) {
		t.Setenv("UA_ASSUME_MAC", "true")
		t.Setenv("UA_ASSUME_WINDOWS", "true")

		_, err := execute(t, "", chromeUA)
		assert.ErrorIs(t, err, useragent.ErrConflictingAssumptions)
	})
}

func TestRootCmd_DebugLog(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--log-level", "debug", "--log-format", "json", chromeUA})
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	require.NoError(t, cmd.Execute())

	var entry map[string]any
	require.NoError(t, json.NewDecoder(&errOut).Decode(&entry))
	assert.Equal(t, "detected user agent", entry["msg"])
	group, ok := entry["user_agent"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "chrome", group["browser"])
}

func TestReadLines(t *testing.T) {
	t.Parallel()

	lines, err := readLines(strings.NewReader("  a/1  \n\n\tb/2\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a/1", "b/2"}, lines)

	lines, err = readLines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestServeCmd(t *testing.T) {
	t.Run("stops with the context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cmd := newRootCmd()
		cmd.SetArgs([]string{"serve", "--addr", "127.0.0.1:0", "--log-format", "json"})
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)

		done := make(chan error, 1)
		go func() { done <- cmd.ExecuteContext(ctx) }()

		time.Sleep(100 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			require.Fail(t, "serve did not stop")
		}
	})

	t.Run("invalid server config", func(t *testing.T) {
		t.Setenv("HTTP_READ_TIMEOUT", "soon")

		_, err := execute(t, "", "serve", "--addr", "127.0.0.1:0")
		assert.ErrorIs(t, err, httpserver.ErrLoadingConfig)
	})

	t.Run("rejects arguments", func(t *testing.T) {
		_, err := execute(t, "", "serve", "extra")
		assert.Error(t, err)
	})
}
