package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ancientlore/homepage/config"
	"github.com/ancientlore/homepage/web"
	"github.com/golang/groupcache"
)

type serveOptions struct {
	Addr              string
	Root              string
	Cache             time.Duration
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
}

// serve runs the preview server until SIGINT or SIGTERM.
func serve(opts serveOptions, cfg config.Serve) error {
	// Single process, so no groupcache peers
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })

	var srv = http.Server{
		Addr:              opts.Addr,
		Handler:           web.New(os.DirFS(opts.Root), cfg, opts.Cache),
		ReadTimeout:       opts.ReadTimeout,
		WriteTimeout:      opts.WriteTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
	}

	// Create signal handler for graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("HTTP server Shutdown: %v", err)
		}
	}()

	log.Printf("Serving %q on %s", opts.Root, opts.Addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Print("Goodbye.")
	return nil
}
