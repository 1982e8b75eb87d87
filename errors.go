package main

import (
	"fmt"
	"net/http"

	"go.goblog.app/sharer/pkgs/contenttype"
)

func serveError(w http.ResponseWriter, _ *http.Request, message string, status int) {
	if message == "" {
		message = http.StatusText(status)
	}
	w.Header().Set("Content-Type", contenttype.TextUTF8)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = fmt.Fprintln(w, message)
}

func serve404(w http.ResponseWriter, r *http.Request) {
	serveError(w, r, fmt.Sprintf("%s was not found", r.URL.Path), http.StatusNotFound)
}

func serveNotAllowed(w http.ResponseWriter, r *http.Request) {
	serveError(w, r, "", http.StatusMethodNotAllowed)
}
