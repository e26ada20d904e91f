// Package web serves a generated site for local preview.
package web

import (
	"fmt"
	"io/fs"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/ancientlore/cachefs"
	"github.com/ancientlore/homepage/config"
)

// CacheGroup prefixes the groupcache group holding the output files.
const CacheGroup = "homepage"

// groups counts handlers; groupcache panics on a duplicate group name.
var groups atomic.Int64

// cacheSize is the groupcache size in bytes.
const cacheSize = 16 * 1024 * 1024

// New returns the preview handler for the site in fsys. Files are read
// through a groupcache-backed cache that expires after cacheFor; zero
// disables expiry. The caller registers the groupcache peer picker.
func New(fsys fs.FS, cfg config.Serve, cacheFor time.Duration) http.Handler {
	name := fmt.Sprintf("%s-%d", CacheGroup, groups.Add(1))
	cached := cachefs.New(fsys, &cachefs.Config{GroupName: name, SizeInBytes: cacheSize, Duration: cacheFor})
	return HeaderHandler(
		ExpiresHandler(
			gziphandler.GzipHandler(
				NotFoundHandler(
					http.FileServer(http.FS(cached)),
					cached,
				),
			),
			time.Duration(cfg.Expires),
			time.Duration(cfg.StaticExpires),
		),
		cfg.Headers)
}
