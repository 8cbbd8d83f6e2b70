package muxhandlers

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/wasmgate/canhttp/mux"
)

// RenderHTML executes the named template with data and wraps the output
// in a 200 text/html response.
func RenderHTML(tpl *template.Template, name string, data any) (*mux.Response, error) {
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("muxhandlers: render template %s: %w", name, err)
	}

	res := mux.NewResponse(200, mux.Text(buf.String()))
	res.SetHeader("Content-Type", "text/html")
	return res, nil
}
