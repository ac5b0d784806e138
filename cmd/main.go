package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelReservationHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/cancel_reservation"
	createContactMessageHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/create_contact_message"
	createReservationHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/get_availability"
	getDayReservationsHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/get_day_reservations"
	getGuestReservationsHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/get_guest_reservations"
	getReservationHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/get_reservation"
	manageClosedDatesHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/manage_closed_dates"
	manageContactMessagesHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/manage_contact_messages"
	manageRecurringClosuresHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/manage_recurring_closures"
	manageTimeSlotsHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/manage_time_slots"
	updateReservationStatusHandler "github.com/m04kA/RST-ReservationService/internal/api/handlers/update_reservation_status"
	"github.com/m04kA/RST-ReservationService/internal/api/middleware"
	"github.com/m04kA/RST-ReservationService/internal/config"
	closureRepo "github.com/m04kA/RST-ReservationService/internal/infra/storage/closure"
	messageRepo "github.com/m04kA/RST-ReservationService/internal/infra/storage/message"
	reservationRepo "github.com/m04kA/RST-ReservationService/internal/infra/storage/reservation"
	timeslotRepo "github.com/m04kA/RST-ReservationService/internal/infra/storage/timeslot"
	mailerClient "github.com/m04kA/RST-ReservationService/internal/integrations/mailer"
	messagesService "github.com/m04kA/RST-ReservationService/internal/service/messages"
	reservationsService "github.com/m04kA/RST-ReservationService/internal/service/reservations"
	scheduleService "github.com/m04kA/RST-ReservationService/internal/service/schedule"
	createReservationUC "github.com/m04kA/RST-ReservationService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/RST-ReservationService/internal/usecase/get_availability"
	"github.com/m04kA/RST-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/RST-ReservationService/pkg/logger"
	"github.com/m04kA/RST-ReservationService/pkg/metrics"
	"github.com/m04kA/RST-ReservationService/pkg/simpletxmanager"
	"github.com/m04kA/RST-ReservationService/pkg/txmanager"
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

	log.Info("Starting RST-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент mailer-сервиса
	mailer := mailerClient.NewClient(
		cfg.MailerClient.URL,
		time.Duration(cfg.MailerClient.Timeout)*time.Second,
		cfg.MailerClient.Token,
		log,
	)
	log.Info("Mailer client initialized (url=%s, timeout=%ds)", cfg.MailerClient.URL, cfg.MailerClient.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		timeslotRepository    *timeslotRepo.Repository
		closureRepository     *closureRepo.Repository
		messageRepository     *messageRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		timeslotRepository = timeslotRepo.NewRepository(wrappedDB)
		closureRepository = closureRepo.NewRepository(wrappedDB)
		messageRepository = messageRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		timeslotRepository = timeslotRepo.NewRepository(db)
		closureRepository = closureRepo.NewRepository(db)
		messageRepository = messageRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	scheduleSvc := scheduleService.NewService(timeslotRepository, closureRepository, log)
	messageSvc := messagesService.NewService(messageRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		timeslotRepository,
		closureRepository,
		mailer,
		txMgr,
		cfg.MailerClient.AdminCopy,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		timeslotRepository,
		reservationRepository,
		closureRepository,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getGuestReservations := getGuestReservationsHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	getDayReservations := getDayReservationsHandler.NewHandler(reservationSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	manageTimeSlots := manageTimeSlotsHandler.NewHandler(scheduleSvc, log)
	manageClosedDates := manageClosedDatesHandler.NewHandler(scheduleSvc, log)
	manageRecurringClosures := manageRecurringClosuresHandler.NewHandler(scheduleSvc, log)
	createContactMessage := createContactMessageHandler.NewHandler(messageSvc, log)
	manageContactMessages := manageContactMessagesHandler.NewHandler(messageSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность слотов на дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Бронирования гостя по email
	api.HandleFunc("/reservations", getGuestReservations.Handle).Methods(http.MethodGet)

	// Отмена бронирования гостем (email подтверждает владение)
	api.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPost)

	// Сообщение контактной формы
	api.HandleFunc("/contact-messages", createContactMessage.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.AdminToken, log))

	// --- Бронирования ---
	admin.HandleFunc("/reservations", getDayReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{reservationId}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)

	// --- Каталог слотов ---
	admin.HandleFunc("/time-slots", manageTimeSlots.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/time-slots", manageTimeSlots.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/time-slots/{slotId}", manageTimeSlots.HandleUpdate).Methods(http.MethodPatch)
	admin.HandleFunc("/time-slots/{slotId}", manageTimeSlots.HandleDelete).Methods(http.MethodDelete)

	// --- Разовые закрытия ---
	admin.HandleFunc("/closed-dates", manageClosedDates.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/closed-dates", manageClosedDates.HandleAdd).Methods(http.MethodPost)
	admin.HandleFunc("/closed-dates/{date}", manageClosedDates.HandleRemove).Methods(http.MethodDelete)

	// --- Еженедельные закрытия ---
	admin.HandleFunc("/recurring-closures", manageRecurringClosures.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/recurring-closures", manageRecurringClosures.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/recurring-closures/{closureId}", manageRecurringClosures.HandleUpdate).Methods(http.MethodPatch)
	admin.HandleFunc("/recurring-closures/{closureId}", manageRecurringClosures.HandleDelete).Methods(http.MethodDelete)

	// --- Сообщения контактной формы ---
	admin.HandleFunc("/contact-messages", manageContactMessages.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/contact-messages/{messageId}/status", manageContactMessages.HandleUpdateStatus).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
