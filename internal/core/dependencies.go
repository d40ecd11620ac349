package core

import (
	"context"
	"fmt"

	"github.com/AliceHab/react-mesto-api-full-gha/configs"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/cookie"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/jwt_service"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/mesto_server/handlers"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/mesto_server/repository"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/mesto_server/service"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/migrations"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/postgres_db"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/rate_limiter"
)

// Dependencies содержит все общие зависимости сервиса
type MestoServiceDependencies struct {
	Config      *configs.AppConfig
	JWTManager  jwt_service.JWTManager
	RateLimiter rate_limiter.RateLimiter
	UserHandler handlers.UserHandlerInterface
	CardHandler handlers.CardHandlerInterface

	pgRepo *postgres_db.PgRepo
}

// InitDependencies инициализирует общие зависимости сервиса
func InitDependencies(ctx context.Context) (*MestoServiceDependencies, error) {
	// Получаем конфигурацию
	conf, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// применяем миграции к базе
	if err := migrations.RunMigrations(ctx, conf.PostgresDBConf.DSN); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// создаём экземпляр пула соединений для postgresQL
	pgRepo, err := postgres_db.NewPgRepo(ctx, conf.PostgresDBConf)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}
	pool := postgres_db.NewPoolAdapter(pgRepo.GetPool())

	// создаём слой репозиториев
	userRepo := repository.NewUserRepository(pool)
	cardRepo := repository.NewCardRepository(pool)

	// создаём сервис токенов и менеджер куки
	jwtManager := jwt_service.NewJWTService(conf.JWTConf)
	cookieManager := cookie.NewManager(conf.CookieConf)

	// создаём сервисный слой
	userService := service.NewUserService(userRepo, jwtManager)
	cardService := service.NewCardService(cardRepo)

	// создаём слой хэндлеров
	userHandler := handlers.NewUserHandler(userService, cookieManager, conf.AuthConf, conf.CookieConf)
	cardHandler := handlers.NewCardHandler(cardService)

	// создаём rate limiter для входящих запросов
	limiter, err := rate_limiter.NewChannelRateLimiter(conf.ServerConf.RateLimit.Std())
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limiter: %w", err)
	}

	return &MestoServiceDependencies{
		Config:      conf,
		JWTManager:  jwtManager,
		RateLimiter: limiter,
		UserHandler: userHandler,
		CardHandler: cardHandler,
		pgRepo:      pgRepo,
	}, nil
}

// Close закрывает зависимости при остановке сервиса
func (d *MestoServiceDependencies) Close() error {
	if d.RateLimiter != nil {
		d.RateLimiter.Stop()
	}
	if d.pgRepo != nil {
		d.pgRepo.Close()
	}
	return nil
}
