// описание HTTP сервера сервиса
package mesto_server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AliceHab/react-mesto-api-full-gha/internal/config"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/jwt_service"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/mesto_server/dto"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/mesto_server/handlers"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/middleware"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/rate_limiter"
)

// структура сервера
type MestoServer struct {
	httpServer  *http.Server
	router      *gin.Engine
	config      *config.ServerConfig
	authConf    *config.AuthConfig
	jwtManager  jwt_service.JWTManager
	userHandler handlers.UserHandlerInterface
	cardHandler handlers.CardHandlerInterface
}

// Конструктор для сервера
func NewMestoServer(
	ctx context.Context,
	conf *config.ServerConfig,
	authConf *config.AuthConfig,
	jwtManager jwt_service.JWTManager,
	limiter rate_limiter.RateLimiter,
	userHandler handlers.UserHandlerInterface,
	cardHandler handlers.CardHandlerInterface,
) (*MestoServer, error) {
	// создаём экземпляр роутера
	router := gin.Default()
	err := router.SetTrustedProxies(nil)
	if err != nil {
		return nil, err
	}

	router.Use(middleware.CORSMiddleware(conf.AllowedOrigins))
	router.Use(rate_limiter.RateLimitMiddleware(limiter))

	return &MestoServer{
		router:      router,
		config:      conf,
		authConf:    authConf,
		jwtManager:  jwtManager,
		userHandler: userHandler,
		cardHandler: cardHandler,
	}, nil
}

// Метод для маршрутизации сервера
func (s *MestoServer) SetUpRoutes() {
	// открытые маршруты: регистрация, логин, выход
	s.router.POST("/signup", middleware.ValidateMiddleware(&dto.SignupRequest{}), s.userHandler.SignupHandler)
	s.router.POST("/signin", middleware.ValidateMiddleware(&dto.SigninRequest{}), s.userHandler.SigninHandler)
	s.router.GET("/signout", s.userHandler.SignoutHandler)

	// защищённые маршруты: всё за гейтом аутентификации
	authorized := s.router.Group("/", middleware.AuthMiddleware(s.authConf, s.jwtManager))

	authorized.GET("/users", s.userHandler.GetUsersHandler)
	authorized.GET("/users/me", s.userHandler.GetCurrentUserHandler)
	authorized.GET("/users/:userId", s.userHandler.GetUserHandler)
	authorized.PATCH("/users/me", middleware.ValidateMiddleware(&dto.UpdateProfileRequest{}), s.userHandler.UpdateProfileHandler)
	authorized.PATCH("/users/me/avatar", middleware.ValidateMiddleware(&dto.UpdateAvatarRequest{}), s.userHandler.UpdateAvatarHandler)

	authorized.GET("/cards", s.cardHandler.GetCardsHandler)
	authorized.POST("/cards", middleware.ValidateMiddleware(&dto.CreateCardRequest{}), s.cardHandler.CreateCardHandler)
	authorized.DELETE("/cards/:cardId", s.cardHandler.DeleteCardHandler)
	authorized.PUT("/cards/:cardId/likes", s.cardHandler.LikeCardHandler)
	authorized.DELETE("/cards/:cardId/likes", s.cardHandler.DislikeCardHandler)

	// всё остальное - 404
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Страница не найдена"})
	})
}

// Метод для запуска сервера
func (s *MestoServer) Run() error {
	s.SetUpRoutes()

	s.httpServer = &http.Server{
		Addr:           s.config.Addr(),
		Handler:        s.router,
		ReadTimeout:    s.config.ReadTimeout.Std(),
		WriteTimeout:   s.config.WriteTimeout.Std(),
		IdleTimeout:    s.config.IdleTimeout.Std(),
		MaxHeaderBytes: s.config.MaxHeaderBytes,
	}

	log.Printf("Starting HTTP server on %s", s.config.Addr())
	return s.httpServer.ListenAndServe()
}

// Метод для graceful shutdown
func (s *MestoServer) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	log.Println("Server shutdown completed")
	return nil
}
