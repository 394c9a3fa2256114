package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mescore/config"
	"mescore/engine"
	"mescore/messaging"
	"mescore/store"
	"mescore/www"
)

var Version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "mescore.yaml", "path to config file")
	writeConfig := flag.Bool("write-config", false, "write the effective config to -config and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("mescore", Version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if *writeConfig {
		if err := cfg.Save(*configPath); err != nil {
			log.Fatalf("write config: %v", err)
		}
		log.Printf("mescore: config written to %s", *configPath)
		return
	}

	// Database
	db, err := store.Open(&cfg.Database)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	log.Printf("mescore: database open (%s)", cfg.Database.Driver)

	// Notifier; an unreachable broker is logged, not fatal
	notifier := messaging.New(&cfg.Notify)
	defer notifier.Close()
	log.Printf("mescore: notifications via %s on %q", notifier.Name(), cfg.Notify.Channel)

	// Engine
	eng := engine.New(engine.Config{
		DB:             db,
		Notifier:       notifier,
		Channel:        cfg.Notify.Channel,
		PublishTimeout: cfg.Notify.PublishTimeout,
	})
	defer eng.Stop()

	// Web server
	addr := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           www.NewRouter(eng),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("mescore: web server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("web server: %v", err)
		}
	}()

	log.Printf("mescore: ready")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Printf("mescore: shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("mescore: web server shutdown: %v", err)
	}

	log.Printf("mescore: stopped")
}
