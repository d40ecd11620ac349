package jwt_service

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/AliceHab/react-mesto-api-full-gha/internal/config"
)

// JWTService - рабочий сервис с методами
type JWTService struct {
	config *JWTConfig // Конфиг внутри сервиса
}

// Конфигурация JWTConfig
type JWTConfig struct {
	SecretKey string          `yaml:"secret"`       // секретный ключ для подписи токена
	TokenExp  config.Duration `yaml:"token_expiry"` // время жизни токена (7 дней)
	Issuer    string          `yaml:"issuer"`       // издатель токена
}

// CustomClaims для JWT: кроме стандартных полей токену доверяется
// только идентификатор пользователя
type CustomClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
