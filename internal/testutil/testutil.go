package testutil

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path"
	"strings"
	"testing"

	"pybootstrap/internal/logging"
	"pybootstrap/internal/system"
)

// Host bundles the fakes a pipeline test runs against. Out receives
// user-facing output for the test's duration; tests that echo
// commands should point their runner at Out as well.
type Host struct {
	Exec *system.MockExecutor
	FS   *system.MockFS
	Out  *bytes.Buffer
}

// NewHost returns a bare fake host: nothing on the search path, an
// empty filesystem, and user output captured into Out.
func NewHost(t *testing.T) *Host {
	t.Helper()

	h := &Host{
		Exec: system.NewMockExecutor(),
		FS:   system.NewMockFS(),
		Out:  &bytes.Buffer{},
	}

	origOut, origErr := logging.Out, logging.ErrOut
	logging.Out, logging.ErrOut = h.Out, h.Out
	t.Cleanup(func() {
		logging.Out, logging.ErrOut = origOut, origErr
	})
	return h
}

// WithPython puts an interpreter on the fake search path.
func (h *Host) WithPython(name, binPath string) *Host {
	h.Exec.AddPath(name, binPath)
	return h
}

// ServeInstaller starts a release server answering every installer
// asset request with payload. The server is closed when the test ends.
func ServeInstaller(t *testing.T, payload []byte) (string, *http.Client) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(path.Base(r.URL.Path), "Miniforge3-") {
			http.NotFound(w, r)
			return
		}
		w.Write(payload)
	}))
	t.Cleanup(server.Close)
	return server.URL, server.Client()
}
