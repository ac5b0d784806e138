package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/RST-ReservationService/internal/config"
	"github.com/m04kA/RST-ReservationService/internal/integrations/resend"
	"github.com/m04kA/RST-ReservationService/internal/mailer"
	"github.com/m04kA/RST-ReservationService/pkg/logger"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting RST-Mailer...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем клиент Resend
	resendClient := resend.NewClient(
		cfg.Mailer.ResendURL,
		cfg.Mailer.ResendAPIKey,
		time.Duration(cfg.Mailer.Timeout)*time.Second,
		log,
	)
	log.Info("Resend client initialized (timeout=%ds)", cfg.Mailer.Timeout)

	// Инициализируем сервис и обработчики
	mailerSvc := mailer.NewService(resendClient, cfg.Mailer.FromAddress, cfg.Mailer.AdminInbox, log)
	handler := mailer.NewHandler(mailerSvc, log)

	// Настраиваем роутер
	// Все маршруты закрыты общим секретом X-Internal-Token
	r := mux.NewRouter()
	r.Use(mailer.InternalAuth(cfg.Mailer.Token, log))

	r.HandleFunc("/send-email", handler.HandleSendEmail).Methods(http.MethodPost)
	r.HandleFunc("/send-admin-confirmation", handler.HandleSendAdminConfirmation).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Mailer.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting mailer server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down mailer server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Mailer server stopped gracefully")
}
