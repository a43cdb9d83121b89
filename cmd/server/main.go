package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"notes-backend/internal/config"
	"notes-backend/internal/server"

	"github.com/joho/godotenv"
)

const configFile = "config.yml"

func main() {
	// Загружаем .env если есть (в production не обязателен)
	_ = godotenv.Load()

	// Загружаем конфигурацию из файла
	appConfig, err := config.InitConfig[config.Config](configFile)
	if err != nil {
		log.Fatalf("Error initializing config: %v", err)
	}

	log.Println("Starting Notes Backend")

	// Создаем сервер и собираем компоненты (DI): Repository → Service → Handler
	srv, err := server.NewServer(appConfig)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	if err := srv.Initialize(); err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	// Канал для graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	// Запуск HTTP сервера в горутине
	errChan := srv.Start()

	// Ожидание сигнала или ошибки
	select {
	case err := <-errChan:
		log.Fatalf("Server error: %v", err)
	case sig := <-sigChan:
		log.Printf("Received signal: %v. Starting graceful shutdown...", sig)
	}

	// Graceful shutdown: даем серверу время на завершение активных запросов
	if err := srv.Shutdown(); err != nil {
		log.Printf("Shutdown finished with error: %v", err)
	}

	log.Println("Notes Backend stopped")
}
