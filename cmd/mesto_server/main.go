package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AliceHab/react-mesto-api-full-gha/internal/core"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/mesto_server"
)

func main() {
	// Создаем корневой контекст
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализируем общие зависимости
	deps, err := core.InitDependencies(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize dependencies: %v", err)
	}

	// Создаем HTTP-сервер
	server, err := mesto_server.NewMestoServer(
		ctx,
		deps.Config.ServerConf,
		deps.Config.AuthConf,
		deps.JWTManager,
		deps.RateLimiter,
		deps.UserHandler,
		deps.CardHandler,
	)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// создаём канал, который будет реагировать на системные сигналы
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Запуск сервера
	go func() {
		log.Printf("HTTP сервер запускается на %s", deps.Config.ServerConf.Addr())
		if err := server.Run(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Ожидание сигнала
	<-sigChan
	log.Println("Остановка сервера...")

	// Graceful shutdown: ждем текущие запросы
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	// Закрываем зависимости при выходе
	if err := deps.Close(); err != nil {
		log.Printf("Error during resources closing: %v", err)
	}

	log.Println("Сервер остановлен")
}
