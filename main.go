package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var sigint chan os.Signal

func waitShutdown(e *echo.Echo, idleConnsClosed chan<- interface{}) {
	defer close(idleConnsClosed)

	sigint = make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)
	defer signal.Stop(sigint)

	<-sigint
	log.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	idleError("HTTP server shutdown:", e.Shutdown(ctx))
}

func listenAndServe(addr string, idleConnsClosed chan<- interface{}) {
	e := apiHandler()
	e.HideBanner = true
	go waitShutdown(e, idleConnsClosed)

	e.Use(middleware.Logger())

	log.WithField("addr", addr).Info("listening")
	idleError("HTTP server end:", e.Start(addr))
}

// Open serves the API on addr until interrupted.
func Open(addr string) {
	idleConnsClosed := make(chan interface{})
	go listenAndServe(addr, idleConnsClosed)
	<-idleConnsClosed
}

func main() {
	addr := flag.String("addr", "", "listen address, overrides NCHESS_ADDR")
	flag.Parse()

	cfg := loadConfig()
	if *addr != "" {
		cfg.Addr = *addr
	}
	cfg.Logs.setup()

	if err := connect(cfg.DB); err != nil {
		log.WithError(err).WithField("driver", cfg.DB.Driver).Fatal("failed to connect database")
	}
	defer func() {
		idleError("close database:", Close())
	}()

	Open(cfg.Addr)
}
