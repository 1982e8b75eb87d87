package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func Test_loadConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(file, []byte(`
server:
  port: 9000
  publicAddress: https://share.example.com/
popup:
  screenWidth: 1280
providers:
  - Twitter
  - email
  - twitter
debug: true
`), 0o644))

	app := &sharerApp{logger: zaptest.NewLogger(t)}
	require.NoError(t, app.loadConfigFile(file))
	require.NoError(t, app.initConfig())

	assert.Equal(t, 9000, app.cfg.Server.Port)
	assert.Equal(t, "https://share.example.com", app.cfg.Server.PublicAddress)
	assert.Equal(t, "share.example.com", app.cfg.Server.publicHostname)
	assert.Equal(t, 1280, app.cfg.Popup.ScreenWidth)
	// Defaults are kept for values not in the file
	assert.Equal(t, 1080, app.cfg.Popup.ScreenHeight)
	assert.True(t, app.cfg.Popup.Focus)
	assert.Equal(t, []string{"twitter", "email"}, app.cfg.Providers)
	assert.True(t, app.cfg.Debug)
	assert.True(t, app.providerEnabled("TWITTER"))
	assert.False(t, app.providerEnabled("reddit"))
}

func Test_loadConfigFileEnv(t *testing.T) {
	t.Setenv("SHARER_SERVER_PORT", "9999")
	t.Setenv("SHARER_POPUP_FOCUS", "false")
	t.Setenv("SHARER_PROVIDERS", "twitter,email")

	// No config file, defaults and environment only
	app := &sharerApp{logger: zaptest.NewLogger(t)}
	require.NoError(t, app.loadConfigFile(""))
	require.NoError(t, app.initConfig())

	assert.Equal(t, 9999, app.cfg.Server.Port)
	assert.False(t, app.cfg.Popup.Focus)
	assert.Equal(t, []string{"twitter", "email"}, app.cfg.Providers)
	assert.Equal(t, "http://localhost:8080", app.cfg.Server.PublicAddress)
	assert.Equal(t, 1920, app.cfg.Popup.ScreenWidth)
}

func Test_loadConfigFileMissing(t *testing.T) {
	app := &sharerApp{logger: zaptest.NewLogger(t)}
	assert.Error(t, app.loadConfigFile(filepath.Join(t.TempDir(), "missing.yml")))
}

func Test_initConfig(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, []string{"facebook", "linkedin", "twitter", "email", "gmail", "reddit"}, app.cfg.Providers)
	assert.Equal(t, "localhost", app.cfg.Server.publicHostname)
	// Second init is a no-op
	require.NoError(t, app.initConfig())

	tests := []struct {
		name   string
		modify func(c *config)
	}{
		{"no public address", func(c *config) { c.Server.PublicAddress = "" }},
		{"invalid public address", func(c *config) { c.Server.PublicAddress = "http://[::1" }},
		{"unknown provider", func(c *config) { c.Providers = []string{"twitter", "myspace"} }},
		{"invalid screen", func(c *config) { c.Popup.ScreenWidth = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := &sharerApp{cfg: createDefaultConfig(), logger: zaptest.NewLogger(t)}
			tt.modify(app.cfg)
			assert.Error(t, app.initConfig())
		})
	}
}
