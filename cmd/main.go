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

	buscarPersonasHandler "github.com/falvarezg/turnos-service/internal/api/handlers/buscar_personas"
	cancelTurnoHandler "github.com/falvarezg/turnos-service/internal/api/handlers/cancel_turno"
	confirmTurnoHandler "github.com/falvarezg/turnos-service/internal/api/handlers/confirm_turno"
	createPersonaHandler "github.com/falvarezg/turnos-service/internal/api/handlers/create_persona"
	createTurnoHandler "github.com/falvarezg/turnos-service/internal/api/handlers/create_turno"
	deletePersonaHandler "github.com/falvarezg/turnos-service/internal/api/handlers/delete_persona"
	deleteTurnoHandler "github.com/falvarezg/turnos-service/internal/api/handlers/delete_turno"
	estadoPersonasHandler "github.com/falvarezg/turnos-service/internal/api/handlers/estado_personas"
	getAvailableSlotsHandler "github.com/falvarezg/turnos-service/internal/api/handlers/get_available_slots"
	getPersonaHandler "github.com/falvarezg/turnos-service/internal/api/handlers/get_persona"
	getTurnoHandler "github.com/falvarezg/turnos-service/internal/api/handlers/get_turno"
	listPersonasHandler "github.com/falvarezg/turnos-service/internal/api/handlers/list_personas"
	listTurnosHandler "github.com/falvarezg/turnos-service/internal/api/handlers/list_turnos"
	reportCancelacionesHandler "github.com/falvarezg/turnos-service/internal/api/handlers/report_cancelaciones"
	reportCanceladosMesHandler "github.com/falvarezg/turnos-service/internal/api/handlers/report_cancelados_mes"
	reportConfirmadosHandler "github.com/falvarezg/turnos-service/internal/api/handlers/report_confirmados"
	reportPorDNIHandler "github.com/falvarezg/turnos-service/internal/api/handlers/report_por_dni"
	reportPorFechaHandler "github.com/falvarezg/turnos-service/internal/api/handlers/report_por_fecha"
	updatePersonaHandler "github.com/falvarezg/turnos-service/internal/api/handlers/update_persona"
	updateTurnoHandler "github.com/falvarezg/turnos-service/internal/api/handlers/update_turno"
	"github.com/falvarezg/turnos-service/internal/api/middleware"
	"github.com/falvarezg/turnos-service/internal/config"
	"github.com/falvarezg/turnos-service/internal/infra/seed"
	personaRepo "github.com/falvarezg/turnos-service/internal/infra/storage/persona"
	turnoRepo "github.com/falvarezg/turnos-service/internal/infra/storage/turno"
	eligibilityService "github.com/falvarezg/turnos-service/internal/service/eligibility"
	personasService "github.com/falvarezg/turnos-service/internal/service/personas"
	reportsService "github.com/falvarezg/turnos-service/internal/service/reports"
	turnosService "github.com/falvarezg/turnos-service/internal/service/turnos"
	createTurnoUC "github.com/falvarezg/turnos-service/internal/usecase/create_turno"
	getAvailableSlotsUC "github.com/falvarezg/turnos-service/internal/usecase/get_available_slots"
	updateTurnoUC "github.com/falvarezg/turnos-service/internal/usecase/update_turno"
	"github.com/falvarezg/turnos-service/pkg/dbmetrics"
	"github.com/falvarezg/turnos-service/pkg/logger"
	"github.com/falvarezg/turnos-service/pkg/metrics"
	"github.com/falvarezg/turnos-service/pkg/simpletxmanager"
	"github.com/falvarezg/turnos-service/pkg/txmanager"
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

	log.Info("Starting turnos-service...")
	log.Info("Configuration loaded from config.toml")

	agenda := cfg.AgendaDomain()
	estados := cfg.EstadoSetDomain()
	log.Info("Agenda configured: %s-%s every %d minutes",
		cfg.Agenda.HoraInicio, cfg.Agenda.HoraFin, cfg.Agenda.IntervaloMinutos)

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

	// Инициализируем репозитории (с метриками или без)
	var (
		personaRepository *personaRepo.Repository
		turnoRepository   *turnoRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		personaRepository = personaRepo.NewRepository(wrappedDB)
		turnoRepository = turnoRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		personaRepository = personaRepo.NewRepository(db)
		turnoRepository = turnoRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Сидинг демо-данных (только на пустой базе)
	if cfg.Seed.Enabled {
		if err := seed.Run(context.Background(), personaRepository, log); err != nil {
			log.Fatal("Seed failed: %v", err)
		}
	}

	// Инициализируем сервисы
	eligibilitySvc := eligibilityService.NewService(
		turnoRepository,
		personaRepository,
		estados,
		cfg.Turnos.UmbralCancelaciones,
		cfg.Turnos.VentanaCancelacionesDias,
		log,
	)
	personasSvc := personasService.NewService(
		personaRepository,
		turnoRepository,
		txMgr,
		estados,
		log,
	)
	turnosSvc := turnosService.NewService(
		turnoRepository,
		txMgr,
		estados,
		log,
	)
	reportsSvc := reportsService.NewService(
		turnoRepository,
		personaRepository,
		estados,
		log,
	)

	// Инициализируем use cases
	createTurnoUseCase := createTurnoUC.NewUseCase(
		turnoRepository,
		personaRepository,
		eligibilitySvc,
		txMgr,
		agenda,
		estados,
		log,
	)
	updateTurnoUseCase := updateTurnoUC.NewUseCase(
		turnoRepository,
		txMgr,
		agenda,
		estados,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		turnoRepository,
		agenda,
		estados,
		log,
	)

	// Инициализируем handlers
	createPersona := createPersonaHandler.NewHandler(personasSvc, log)
	listPersonas := listPersonasHandler.NewHandler(personasSvc, log)
	buscarPersonas := buscarPersonasHandler.NewHandler(personasSvc, log)
	estadoPersonas := estadoPersonasHandler.NewHandler(personasSvc, log)
	getPersona := getPersonaHandler.NewHandler(personasSvc, log)
	updatePersona := updatePersonaHandler.NewHandler(personasSvc, log)
	deletePersona := deletePersonaHandler.NewHandler(personasSvc, log)

	createTurno := createTurnoHandler.NewHandler(createTurnoUseCase, log)
	listTurnos := listTurnosHandler.NewHandler(turnosSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getTurno := getTurnoHandler.NewHandler(turnosSvc, log)
	updateTurno := updateTurnoHandler.NewHandler(updateTurnoUseCase, log)
	cancelTurno := cancelTurnoHandler.NewHandler(turnosSvc, log)
	confirmTurno := confirmTurnoHandler.NewHandler(turnosSvc, log)
	deleteTurno := deleteTurnoHandler.NewHandler(turnosSvc, log)

	reportPorDNI := reportPorDNIHandler.NewHandler(reportsSvc, log)
	reportCancelaciones := reportCancelacionesHandler.NewHandler(reportsSvc, log)
	reportPorFecha := reportPorFechaHandler.NewHandler(reportsSvc, log)
	reportCanceladosMes := reportCanceladosMesHandler.NewHandler(reportsSvc, log)
	reportConfirmados := reportConfirmadosHandler.NewHandler(reportsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Personas ---
	// Статические пути регистрируются раньше /personas/{personaId},
	// иначе mux примет "buscar" за идентификатор
	api.HandleFunc("/personas", createPersona.Handle).Methods(http.MethodPost)
	api.HandleFunc("/personas", listPersonas.Handle).Methods(http.MethodGet)
	api.HandleFunc("/personas/buscar", buscarPersonas.Handle).Methods(http.MethodGet)
	api.HandleFunc("/personas/estado/{estado}", estadoPersonas.Handle).Methods(http.MethodGet)
	api.HandleFunc("/personas/{personaId}", getPersona.Handle).Methods(http.MethodGet)
	api.HandleFunc("/personas/{personaId}", updatePersona.Handle).Methods(http.MethodPut)
	api.HandleFunc("/personas/{personaId}", deletePersona.Handle).Methods(http.MethodDelete)

	// --- Turnos ---
	api.HandleFunc("/turnos", createTurno.Handle).Methods(http.MethodPost)
	api.HandleFunc("/turnos", listTurnos.Handle).Methods(http.MethodGet)
	api.HandleFunc("/turnos/horarios-disponibles", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/turnos/{turnoId}", getTurno.Handle).Methods(http.MethodGet)
	api.HandleFunc("/turnos/{turnoId}", updateTurno.Handle).Methods(http.MethodPut)
	api.HandleFunc("/turnos/{turnoId}/cancelar", cancelTurno.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/turnos/{turnoId}/confirmar", confirmTurno.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/turnos/{turnoId}", deleteTurno.Handle).Methods(http.MethodDelete)

	// --- Reportes ---
	api.HandleFunc("/reportes/turnos/persona/{dni}", reportPorDNI.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reportes/turnos/fecha/{fecha}", reportPorFecha.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reportes/cancelaciones", reportCancelaciones.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reportes/cancelados-mes", reportCanceladosMes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reportes/confirmados", reportConfirmados.Handle).Methods(http.MethodGet)

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
