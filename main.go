package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"techpark/internal/catalog"
	intconfig "techpark/internal/config"
	intdb "techpark/internal/db"
	router "techpark/internal/http"
	"techpark/internal/http/handlers"
	"techpark/internal/metrics"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db, err := intconfig.ConnectDB(env)
	if err != nil {
		log.Fatalf("Gagal membuka koneksi database: %v", err)
	}
	defer intconfig.CloseDB()

	schemaCtx, schemaCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if created, err := intdb.EnsureSchema(schemaCtx, db); err != nil {
		log.Printf("warning: gagal memastikan tabel %s: %v", intdb.BookingsTable, err)
	} else if created {
		log.Printf("Tabel %s siap", intdb.BookingsTable)
	}
	schemaCancel()

	cat := catalog.Default()
	if env.LocationsFile != "" {
		loaded, err := catalog.Load(env.LocationsFile)
		if err != nil {
			log.Fatalf("Gagal memuat daftar lokasi %s: %v", env.LocationsFile, err)
		}
		cat = loaded
	}

	r := router.NewRouter(env, handlers.API{
		Catalog: cat,
		Metrics: metrics.New(),
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server berjalan di http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Gagal menjalankan server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Mematikan server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown server gagal: %v", err)
	}

	log.Println("Server berhenti dengan aman.")
}
