// Package fetch downloads installer artifacts over HTTPS.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"

	"pybootstrap/internal/errors"
	"pybootstrap/internal/logging"
)

// Downloader fetches release assets into a staging directory.
type Downloader struct {
	Client *http.Client
	Out    io.Writer
}

// New returns a Downloader. A nil client falls back to
// http.DefaultClient, a nil writer to stdout.
func New(client *http.Client, out io.Writer) *Downloader {
	if client == nil {
		client = http.DefaultClient
	}
	if out == nil {
		out = os.Stdout
	}
	return &Downloader{Client: client, Out: out}
}

// Download fetches url into destDir/filename and returns the written
// path. The filename is joined with SecureJoin so the artifact cannot
// escape the staging directory. Partial files are left in place on
// failure; the staging directory is discarded by the caller.
func (d *Downloader) Download(url, destDir, filename string) (string, error) {
	dest, err := securejoin.SecureJoin(destDir, filename)
	if err != nil {
		return "", errors.DownloadFailed(url, err)
	}

	resp, err := d.Client.Get(url)
	if err != nil {
		return "", errors.DownloadFailed(url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logging.Warn("closing download body", "url", url, "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", errors.DownloadFailed(url, fmt.Errorf("unexpected status %s", resp.Status))
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", errors.DownloadFailed(url, err)
	}

	out, err := os.Create(dest)
	if err != nil {
		return "", errors.DownloadFailed(url, err)
	}

	meter := newProgressMeter(d.Out, resp.ContentLength)
	written, err := io.Copy(out, io.TeeReader(resp.Body, meter))
	meter.Finish()
	if cerr := out.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return "", errors.DownloadFailed(url, err)
	}

	logging.Debug("artifact downloaded", "url", url, "dest", dest, "bytes", written)
	return dest, nil
}
