package main

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/justinas/alice"
)

// Share
func (a *sharerApp) shareRouter(r chi.Router) {
	r.Use(noIndexHeader, middleware.NoCache)
	r.Get("/", a.serveShareIndex)
	checked := alice.New(a.checkShareProvider)
	r.Method("GET", "/{provider}/target", checked.ThenFunc(a.serveShareTarget))
	r.Method("GET", "/{provider}", checked.ThenFunc(a.serveShare))
}
