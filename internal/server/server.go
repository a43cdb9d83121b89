package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"notes-backend/internal/api/http/middleware"
	"notes-backend/internal/api/rest"
	"notes-backend/internal/api/swagger"
	"notes-backend/internal/config"
	"notes-backend/internal/repository/memory"
	notesService "notes-backend/internal/service/notes"

	"github.com/rs/cors"
)

// Server представляет HTTP сервер приложения
type Server struct {
	// HTTP компоненты
	Mux        *http.ServeMux
	HTTPServer *http.Server
	HTTPAddr   string

	// Конфигурация
	Config *config.Config
}

// NewServer создает и инициализирует новый экземпляр сервера
func NewServer(cfg *config.Config) (*Server, error) {
	// Получаем порт из конфига с дефолтным значением
	httpPort := cfg.Server.PortHTTP
	if httpPort == 0 {
		httpPort = 8080
		log.Printf("Warning: PortHTTP is 0, using default 8080")
	}

	log.Printf("Config loaded: HTTP port=%d", httpPort)

	httpAddr := "0.0.0.0:" + strconv.Itoa(httpPort)

	// Создаем HTTP mux
	mux := http.NewServeMux()

	return &Server{
		Mux:      mux,
		HTTPAddr: httpAddr,
		Config:   cfg,
	}, nil
}

// Initialize инициализирует компоненты сервера (Repository → Service → Handler).
// Хранилище создается здесь один раз и передается явно по цепочке —
// глобальных синглтонов нет, тесты собирают собственные экземпляры.
func (s *Server) Initialize() error {
	// Инициализация компонентов (DI): Repository → Service → Handler
	noteRepo := memory.NewRepository()
	log.Println("Initialized in-memory repository (map-based)")

	events := notesService.NewEventService()
	log.Println("Initialized note event service")

	noteSvc := notesService.NewNoteService(noteRepo, events)
	log.Println("Initialized note service")

	noteHandler := rest.NewHandler(noteSvc)
	noteHandler.Register(s.Mux)
	log.Println("Registered REST handlers")

	eventsHandler := rest.NewEventsHandler(events)
	eventsHandler.Register(s.Mux)
	log.Println("Registered WebSocket events handler at /events")

	// OpenAPI документ (если включен в конфиге)
	if s.Config.Swagger != nil && s.Config.Swagger.Enabled {
		swagger.ServeSwagger(s.Mux)
	}

	if s.Config.HTTP == nil {
		log.Printf("Warning: HTTP config section is missing, using defaults")
		s.Config.HTTP = &config.ConfigHTTP{}
	}

	// Применение middleware (в обратном порядке выполнения):
	// 1. CORS (обработка CORS заголовков - самый внешний слой)
	// 2. Logging (логирует все запросы)
	// 3. Rate Limiting (ограничивает количество запросов)
	var handler http.Handler = s.Mux
	handler = middleware.RateLimit(handler, s.Config.HTTP.RateLimitRPS, s.Config.HTTP.RateLimitBurst)
	handler = middleware.Logging(handler)
	handler = setupCORS(s.Config.HTTP).Handler(handler)

	// Создаем http.Server с таймаутами из конфига
	s.HTTPServer = &http.Server{
		Addr:              s.HTTPAddr,
		Handler:           handler,
		ReadTimeout:       time.Duration(s.Config.Server.HTTPReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(s.Config.Server.HTTPWriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(s.Config.Server.HTTPIdleTimeout) * time.Second,
		ReadHeaderTimeout: time.Duration(s.Config.Server.HTTPReadHeaderTimeout) * time.Second,
	}

	return nil
}

// Start запускает HTTP сервер в горутине
// Возвращает канал ошибок для отслеживания ошибок сервера
func (s *Server) Start() <-chan error {
	errChan := make(chan error, 1)

	go func() {
		log.Printf("HTTP server listening on %s", s.HTTPAddr)
		if err := s.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	return errChan
}

// Shutdown выполняет graceful shutdown сервера
func (s *Server) Shutdown() error {
	log.Println("Starting graceful shutdown...")

	shutdownTimeout := time.Duration(s.Config.Server.GracefulShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.HTTPServer.Shutdown(ctx); err != nil {
		log.Printf("Graceful shutdown timeout, forcing close: %v", err)
		return s.HTTPServer.Close()
	}

	log.Println("HTTP server stopped gracefully")
	return nil
}

// setupCORS настраивает CORS middleware.
// Политика сервиса — полностью открытая: любые origins, методы и заголовки,
// credentials разрешены. AllowOriginFunc нужен, чтобы вместе с credentials
// в ответ уходил конкретный origin, а не "*"
func setupCORS(cfg *config.ConfigHTTP) *cors.Cors {
	maxAge := cfg.CORSMaxAge
	if maxAge == 0 {
		maxAge = 86400 // 24 часа по умолчанию
	}

	return cors.New(cors.Options{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           maxAge,
	})
}
