package main

import (
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

func servePing(w http.ResponseWriter, _ *http.Request) {
	_, _ = io.WriteString(w, "pong")
}

func (a *sharerApp) healthcheck() bool {
	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Get(a.cfg.Server.PublicAddress + pingPath)
	if err != nil {
		a.error("Healthcheck failed", zap.Error(err))
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}

func (a *sharerApp) healthcheckExitCode() int {
	if a.healthcheck() {
		return 0
	}
	return 1
}
