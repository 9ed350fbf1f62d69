// Package testutil provides a fake-host harness for pipeline tests.
//
// A Host bundles the process-level fakes a test runs against: a mock
// executor with a controllable search path, an in-memory filesystem,
// and a buffer capturing user-facing output.
//
// # Fake Host
//
//	host := testutil.NewHost(t)
//	host.WithPython("python3", "/usr/bin/python3")
//	host.Exec.AddResponse("/usr/bin/python3 --version",
//	    system.MockResponse{Output: []byte("Python 3.12.4\n")})
//
// NewHost redirects user output into host.Out for the test's duration
// and restores it on cleanup. The real filesystem and executor are
// never touched.
//
// # Installer Downloads
//
// ServeInstaller starts a stub release server that answers installer
// asset requests with a fixed payload:
//
//	url, client := testutil.ServeInstaller(t, []byte("#!/bin/sh\n"))
//
// Point a fetcher's base URL at the returned server to exercise
// download paths without network access.
package testutil
