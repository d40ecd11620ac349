// описание общего конфига сервиса
package configs

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/AliceHab/react-mesto-api-full-gha/internal/config"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/jwt_service"
)

type AppConfig struct {
	ServerConf     *config.ServerConfig
	PostgresDBConf *config.PostgresDBConfig
	JWTConf        *jwt_service.JWTConfig // секретный ключ для подписи и время жизни токена
	CookieConf     *config.CookieManagerConfig
	AuthConf       *config.AuthConfig
}

// LoadConfig загружает конфиг-данные: пути к .yml файлам берутся из окружения (.env)
func LoadConfig() (*AppConfig, error) {
	// .env опционален: в контейнере переменные приходят из окружения
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	// загружаем данные из .yml файла для serverConfig
	serverConf, err := config.LoadYAMLConfig(os.Getenv("SERVER_CONFIG_PATH"), config.UseDefaultServerConfig)
	if err != nil {
		return nil, fmt.Errorf("error during loading server config: %w", err)
	}

	// загружаем данные из .yml файла для postgresDBConfig
	postgresConf, err := config.LoadYAMLConfig(os.Getenv("POSTGRES_CONFIG_PATH"), config.UseDefaultPostgresDBConfig)
	if err != nil {
		return nil, fmt.Errorf("error during loading postgres config: %w", err)
	}

	// конфиг JWT обязателен: без секрета сервис не стартует
	jwtConf, err := jwt_service.LoadJWTConfig(os.Getenv("JWT_CONFIG_PATH"))
	if err != nil {
		return nil, fmt.Errorf("error during loading JWT config: %w", err)
	}

	// загружаем данные из .yml файла для конфига куки
	cookieConf, err := config.LoadYAMLConfig(os.Getenv("COOKIE_CONFIG_PATH"), config.DefaultCookieConfig)
	if err != nil {
		return nil, fmt.Errorf("error during loading cookie config: %w", err)
	}

	// загружаем данные из .yml файла для конфига аутентификации
	authConf, err := config.LoadYAMLConfig(os.Getenv("AUTH_CONFIG_PATH"), config.UseDefaultAuthConfig)
	if err != nil {
		return nil, fmt.Errorf("error during loading auth config: %w", err)
	}
	if err := authConf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AppConfig{
		ServerConf:     serverConf,
		PostgresDBConf: postgresConf,
		JWTConf:        jwtConf,
		CookieConf:     cookieConf,
		AuthConf:       authConf,
	}, nil
}
