package web

import (
	"net/http"
	"strings"
	"time"
)

var gmt = time.FixedZone("GMT", 0)

// HeaderHandler sets the configured headers on every response.
func HeaderHandler(h http.Handler, headers map[string]string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		h.ServeHTTP(w, r)
	})
}

// isPage reports whether the request is for a generated page.
func isPage(p string) bool {
	return strings.HasSuffix(p, "/") || strings.HasSuffix(p, ".html")
}

// ExpiresHandler sets the Expires header, using pages for generated pages
// and assets for images, styles and everything else. Zero leaves it unset.
func ExpiresHandler(h http.Handler, pages, assets time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expiry := assets
		if isPage(r.URL.Path) {
			expiry = pages
		}
		if expiry != 0 {
			w.Header().Set("Expires", time.Now().Add(expiry).In(gmt).Format(time.RFC1123))
		}
		h.ServeHTTP(w, r)
	})
}
