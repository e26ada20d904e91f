package web

import (
	"fmt"
	"io/fs"
	"net/http"
)

// NotFoundFile is served for missing paths when the site has one.
const NotFoundFile = "404.html"

// NotFoundHandler replaces the body of 404 responses from h with
// NotFoundFile from fsys, or a short plain page.
func NotFoundHandler(h http.Handler, fsys fs.FS) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(&notFoundWriter{ResponseWriter: w, fsys: fsys}, r)
	})
}

type notFoundWriter struct {
	http.ResponseWriter
	fsys    fs.FS
	handled bool
}

func (w *notFoundWriter) Write(b []byte) (int, error) {
	if w.handled {
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
}

func (w *notFoundWriter) WriteHeader(statusCode int) {
	if statusCode != http.StatusNotFound {
		w.ResponseWriter.WriteHeader(statusCode)
		return
	}
	w.handled = true
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(statusCode)
	b, err := fs.ReadFile(w.fsys, NotFoundFile)
	if err != nil {
		fmt.Fprintf(w.ResponseWriter, "<!DOCTYPE html>\n<title>%[1]s</title>\n<h1>%[1]s</h1>\n", http.StatusText(http.StatusNotFound))
		return
	}
	w.ResponseWriter.Write(b)
}
