package muxhandlers

import (
	"context"
	"fmt"
	"io/fs"
	"mime"
	"path"
	"strings"

	"github.com/wasmgate/canhttp/mux"
)

// StaticFilesConfig configures StaticFiles registration.
type StaticFilesConfig struct {
	// Prefix is the URL prefix the files are served under.
	// Defaults to "/static".
	Prefix string
}

// StaticFiles registers every regular file in fsys as a non-upgrading
// GET route under the configured prefix. The Content-Type is derived
// from the file extension, falling back to application/octet-stream.
// Text and JSON files are served as text bodies, everything else as raw
// bytes.
//
// File contents are read once at registration time, matching a host
// model where assets are compiled into the binary.
func StaticFiles(router *mux.Router, cfg StaticFilesConfig, fsys fs.FS) error {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "/static"
	}
	prefix = strings.TrimSuffix(prefix, "/")

	return fs.WalkDir(fsys, ".", func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("muxhandlers: read static file %s: %w", name, err)
		}

		contentType := mime.TypeByExtension(path.Ext(name))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		body := mux.Raw(data)
		if strings.HasPrefix(contentType, "text/") || strings.Contains(contentType, "json") {
			body = mux.Text(string(data))
		}

		router.Get(prefix+"/"+name, false, mux.HandlerFunc(
			func(_ context.Context, _ *mux.Request) (*mux.Response, error) {
				res := mux.NewResponse(200, body)
				res.SetHeader("Content-Type", contentType)
				return res, nil
			}))
		return nil
	})
}
