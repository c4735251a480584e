//go:build !tinygo

// Command helloapi serves the message API the display fetches from.
package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

func main() {
	addr := flag.String("addr", ":8080", "Listen address.")
	debug := flag.Bool("debug", false, "Run gin in debug mode with request logging.")
	flag.Parse()

	if !*debug {
		gin.SetMode(gin.ReleaseMode)
	}
	s := newServer(defaultClicks)
	if *debug {
		s.router.Use(gin.Logger())
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	fmt.Fprintf(os.Stderr, "helloapi: listening on %s\n", *addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
