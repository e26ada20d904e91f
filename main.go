package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ancientlore/homepage/build"
	"github.com/ancientlore/homepage/config"
	"github.com/facebookgo/flagenv"
)

// main generates the site, then optionally serves it.
func main() {
	// Setup flags
	var (
		fContent           = flag.String("content", "content", "Content folder.")
		fOutput            = flag.String("output", "dist", "Output folder.")
		fTemplates         = flag.String("templates", "templates", "Template folder.")
		fConfig            = flag.String("config", config.DefaultFile, "Settings file; optional.")
		fServe             = flag.String("serve", "", "Serve the output at this address after generating, like \":8080\".")
		fCache             = flag.Duration("cache", 10*time.Second, "Cache expiration for served files; 0 disables it.")
		fReadTimeout       = flag.Duration("readtimeout", 10*time.Second, "HTTP server read timeout.")
		fReadHeaderTimeout = flag.Duration("readheadertimeout", 5*time.Second, "HTTP server read header timeout.")
		fWriteTimeout      = flag.Duration("writetimeout", 30*time.Second, "HTTP server write timeout.")
	)
	flag.Parse()
	flagenv.Parse()

	// Read settings
	cfg, err := config.Load(*fConfig)
	if err != nil {
		log.Printf("Cannot load settings: %s", err)
		os.Exit(1)
	}

	// Generate
	err = build.Run(build.Options{
		ContentDir:  *fContent,
		OutputDir:   *fOutput,
		TemplateDir: *fTemplates,
		Config:      cfg,
	})
	if err != nil {
		log.Printf("Generation failed: %s", err)
		os.Exit(2)
	}

	if *fServe == "" {
		return
	}
	err = serve(serveOptions{
		Addr:              *fServe,
		Root:              *fOutput,
		Cache:             *fCache,
		ReadTimeout:       *fReadTimeout,
		ReadHeaderTimeout: *fReadHeaderTimeout,
		WriteTimeout:      *fWriteTimeout,
	}, cfg.Serve)
	if err != nil {
		log.Printf("HTTP server: %v", err)
		os.Exit(3)
	}
}
