package main

import (
	"html"
	"net/http"
	"sync"

	shutdowner "git.jlel.se/jlelse/go-shutdowner"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/microcosm-cc/bluemonday"
	"go.goblog.app/sharer/pkgs/minify"
	"go.uber.org/zap"
)

type sharerApp struct {
	// Config
	cfg *config
	// HTTP Routers
	d http.Handler
	// Logs
	initLogOnce sync.Once
	logger      *zap.Logger
	logLevel    zap.AtomicLevel
	logf        *rotatelogs.RotateLogs
	// Minify
	min minify.Minifier
	// Sanitizing
	textPolicyInit sync.Once
	textPolicy     *bluemonday.Policy
	// Shutdown
	shutdown shutdowner.Shutdowner
}

// plainText strips all markup from s, used for text that ends up on pages.
func (a *sharerApp) plainText(s string) string {
	a.textPolicyInit.Do(func() {
		a.textPolicy = bluemonday.StrictPolicy()
	})
	return html.UnescapeString(a.textPolicy.Sanitize(s))
}
