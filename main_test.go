package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newTestApp(t *testing.T, modify ...func(c *config)) *sharerApp {
	t.Helper()
	app := &sharerApp{
		cfg:    createDefaultConfig(),
		logger: zaptest.NewLogger(t),
	}
	for _, m := range modify {
		m(app.cfg)
	}
	require.NoError(t, app.initConfig())
	app.reloadRouter()
	return app
}
