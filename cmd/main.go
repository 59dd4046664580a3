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
	"github.com/redis/go-redis/v9"

	catalogHandler "github.com/kmlvv/BSM-SalonService/internal/api/handlers/catalog"
	clientsHandler "github.com/kmlvv/BSM-SalonService/internal/api/handlers/clients"
	createAppointmentHandler "github.com/kmlvv/BSM-SalonService/internal/api/handlers/create_appointment"
	createFinanceRecordHandler "github.com/kmlvv/BSM-SalonService/internal/api/handlers/create_finance_record"
	deleteAppointmentHandler "github.com/kmlvv/BSM-SalonService/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/kmlvv/BSM-SalonService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/kmlvv/BSM-SalonService/internal/api/handlers/get_available_slots"
	listAppointmentsHandler "github.com/kmlvv/BSM-SalonService/internal/api/handlers/list_appointments"
	listFinanceRecordsHandler "github.com/kmlvv/BSM-SalonService/internal/api/handlers/list_finance_records"
	loginHandler "github.com/kmlvv/BSM-SalonService/internal/api/handlers/login"
	materialsHandler "github.com/kmlvv/BSM-SalonService/internal/api/handlers/materials"
	reportsHandler "github.com/kmlvv/BSM-SalonService/internal/api/handlers/reports"
	updateAppointmentStatusHandler "github.com/kmlvv/BSM-SalonService/internal/api/handlers/update_appointment_status"
	"github.com/kmlvv/BSM-SalonService/internal/api/middleware"
	"github.com/kmlvv/BSM-SalonService/internal/config"
	appointmentsRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/appointments"
	catalogRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/catalog"
	clientsRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/clients"
	financesRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/finances"
	materialsRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/materials"
	"github.com/kmlvv/BSM-SalonService/internal/infra/storage/snapshot"
	usersRepo "github.com/kmlvv/BSM-SalonService/internal/infra/storage/users"
	appointmentsService "github.com/kmlvv/BSM-SalonService/internal/service/appointments"
	catalogService "github.com/kmlvv/BSM-SalonService/internal/service/catalog"
	clientsService "github.com/kmlvv/BSM-SalonService/internal/service/clients"
	financesService "github.com/kmlvv/BSM-SalonService/internal/service/finances"
	materialsService "github.com/kmlvv/BSM-SalonService/internal/service/materials"
	reportsService "github.com/kmlvv/BSM-SalonService/internal/service/reports"
	usersService "github.com/kmlvv/BSM-SalonService/internal/service/users"
	createAppointmentUC "github.com/kmlvv/BSM-SalonService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/kmlvv/BSM-SalonService/internal/usecase/get_available_slots"
	updateAppointmentStatusUC "github.com/kmlvv/BSM-SalonService/internal/usecase/update_appointment_status"
	"github.com/kmlvv/BSM-SalonService/pkg/logger"
	"github.com/kmlvv/BSM-SalonService/pkg/metrics"
	"github.com/kmlvv/BSM-SalonService/pkg/simpletxmanager"
	"github.com/kmlvv/BSM-SalonService/pkg/types"
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

	log.Info("Starting BSM-SalonService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ctx := context.Background()

	// Выбираем бэкенд хранилища снапшотов
	var store snapshot.Store
	switch cfg.Storage.Backend {
	case config.BackendFile:
		fileStore, err := snapshot.NewFileStore(cfg.Storage.File.Dir)
		if err != nil {
			log.Fatal("Failed to initialize file storage: %v", err)
		}
		store = fileStore
		log.Info("Using file snapshot storage (dir=%s)", cfg.Storage.File.Dir)

	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.Storage.Postgres.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Storage.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Storage.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Storage.Postgres.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}

		pgStore := snapshot.NewPostgresStore(db)
		if err := pgStore.InitSchema(ctx); err != nil {
			log.Fatal("Failed to initialize snapshot schema: %v", err)
		}
		store = pgStore
		log.Info("Using postgres snapshot storage (host=%s, db=%s)",
			cfg.Storage.Postgres.Host, cfg.Storage.Postgres.DBName)

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		store = snapshot.NewRedisStore(client)
		log.Info("Using redis snapshot storage (addr=%s)", cfg.Storage.Redis.Addr)

	default:
		log.Fatal("Unknown storage backend: %s", cfg.Storage.Backend)
	}

	// Оборачиваем хранилище метриками
	if cfg.Metrics.Enabled {
		store = snapshot.WithMetrics(store, metricsCollector)
	}

	// Инициализируем репозитории (каждый загружает свой снапшот)
	appointmentRepository, err := appointmentsRepo.NewRepository(ctx, store)
	if err != nil {
		log.Fatal("Failed to load appointments snapshot: %v", err)
	}
	financeRepository, err := financesRepo.NewRepository(ctx, store)
	if err != nil {
		log.Fatal("Failed to load finances snapshot: %v", err)
	}
	userRepository, err := usersRepo.NewRepository(ctx, store)
	if err != nil {
		log.Fatal("Failed to load users snapshot: %v", err)
	}
	catalogRepository, err := catalogRepo.NewRepository(ctx, store)
	if err != nil {
		log.Fatal("Failed to load services snapshot: %v", err)
	}
	materialRepository, err := materialsRepo.NewRepository(ctx, store)
	if err != nil {
		log.Fatal("Failed to load materials snapshot: %v", err)
	}
	clientRepository, err := clientsRepo.NewRepository(ctx, store)
	if err != nil {
		log.Fatal("Failed to load clients snapshot: %v", err)
	}

	// Глобальная блокировка для мутирующих операций
	txMgr := simpletxmanager.NewTransactionManager()

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	financeSvc := financesService.NewService(financeRepository, log)
	userSvc := usersService.NewService(userRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	materialSvc := materialsService.NewService(materialRepository, log)
	clientSvc := clientsService.NewService(clientRepository, log)
	reportSvc := reportsService.NewService(financeRepository, appointmentRepository, userRepository, log)

	// Заполняем пустое хранилище мастерами по умолчанию
	if err := userSvc.EnsureDefaults(ctx); err != nil {
		log.Fatal("Failed to seed default users: %v", err)
	}

	// Рабочие часы салона для перечисления слотов
	schedule := getAvailableSlotsUC.Schedule{
		Open:        types.TimeString(cfg.Schedule.OpenTime),
		Close:       types.TimeString(cfg.Schedule.CloseTime),
		StepMinutes: cfg.Schedule.SlotStepMinutes,
	}

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		userRepository,
		catalogRepository,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		userRepository,
		schedule,
		log,
	)
	updateAppointmentStatusUseCase := updateAppointmentStatusUC.NewUseCase(
		appointmentRepository,
		financeRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	login := loginHandler.NewHandler(userSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(updateAppointmentStatusUseCase, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createFinanceRecord := createFinanceRecordHandler.NewHandler(financeSvc, log)
	listFinanceRecords := listFinanceRecordsHandler.NewHandler(financeSvc, log)
	catalog := catalogHandler.NewHandler(catalogSvc, log)
	materials := materialsHandler.NewHandler(materialSvc, log)
	clients := clientsHandler.NewHandler(clientSvc, log)
	reports := reportsHandler.NewHandler(reportSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Вход сотрудника
	api.HandleFunc("/login", login.Handle).Methods(http.MethodPost)

	// Слоты сетки для мастера на дату
	api.HandleFunc("/providers/{providerId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи клиентов ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Финансовый журнал ---
	protected.HandleFunc("/finances", createFinanceRecord.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/finances", listFinanceRecords.Handle).Methods(http.MethodGet)

	// --- Каталог услуг ---
	protected.HandleFunc("/services", catalog.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/services", catalog.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/services/{id}", catalog.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/services/{id}", catalog.HandleDelete).Methods(http.MethodDelete)

	// --- Склад материалов ---
	protected.HandleFunc("/materials", materials.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/materials", materials.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/materials/{id}/quantity", materials.HandleUpdateQuantity).Methods(http.MethodPatch)
	protected.HandleFunc("/materials/{id}", materials.HandleDelete).Methods(http.MethodDelete)

	// --- Картотека клиентов ---
	protected.HandleFunc("/clients", clients.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/clients", clients.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/clients/{id}", clients.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id}/visits", clients.HandleAddVisit).Methods(http.MethodPost)

	// --- Отчеты ---
	protected.HandleFunc("/reports/summary", reports.Handle).Methods(http.MethodGet)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}
