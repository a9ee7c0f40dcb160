package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/AnasLabzar/server-paiment-service-fr/internal/client"
	"github.com/AnasLabzar/server-paiment-service-fr/internal/config"
	"github.com/AnasLabzar/server-paiment-service-fr/internal/notifier"
	"github.com/AnasLabzar/server-paiment-service-fr/internal/repository"
	"github.com/AnasLabzar/server-paiment-service-fr/internal/server"
	"github.com/AnasLabzar/server-paiment-service-fr/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	if cfg.Environment.Name != "development" && cfg.HMACSecret == "dev-hmac-secret-change-me" {
		log.Println("WARNING: running with the development HMAC secret")
	}

	db := client.InitMysqlClient(cfg.DatabaseURL)
	mailNotifier := notifier.NewSMTPNotifier(cfg.SMTP)

	paymentRepo := repository.NewPaymentRepository(db)

	verifier := service.NewOrderVerifier(cfg.HMACSecret)
	paymentService := service.NewPaymentService(paymentRepo, mailNotifier, cfg.RequireFullForm)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(verifier, paymentService, cfg.AllowedOrigins)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
