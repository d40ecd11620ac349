package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AliceHab/react-mesto-api-full-gha/internal/config"
	"github.com/AliceHab/react-mesto-api-full-gha/internal/jwt_service"
)

// ключ, под которым ID авторизованного пользователя лежит в контексте gin.
// Только этот middleware кладёт идентичность в контекст - хэндлеры не доверяют
// полям из тела запроса.
const ctxUserIDKey = "auth_user_id"

const authRequiredMessage = "Необходима авторизация"

// AuthMiddleware - гейт аутентификации для защищённых маршрутов.
// Достаёт токен из одного сконфигурированного транспорта (кука "jwt" или
// заголовок Authorization: Bearer), проверяет его и кладёт ID пользователя в контекст.
// Любая проблема с токеном сводится к одному ответу 401, чтобы клиент
// не мог отличить истёкший токен от подделанного.
func AuthMiddleware(authConf *config.AuthConfig, jwtManager jwt_service.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Получаем токен из сконфигурированного транспорта
		tokenString, err := extractToken(c, authConf)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": authRequiredMessage})
			return
		}

		// Парсим и проверяем токен
		userID, err := jwtManager.ParseUserID(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": authRequiredMessage})
			return
		}

		// Добавляем ID пользователя в контекст
		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

// CurrentUserID возвращает ID пользователя, положенный в контекст гейтом аутентификации
func CurrentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}
	userID, ok := v.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// извлечение токена из куки или заголовка, в зависимости от конфига
func extractToken(c *gin.Context, authConf *config.AuthConfig) (string, error) {
	switch authConf.TokenTransport {
	case config.TokenTransportBearer:
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			return "", errors.New("authorization header is required")
		}
		return CheckBearerFormat(authHeader)
	default:
		token, err := c.Cookie(authConf.CookieName)
		if err != nil || token == "" {
			return "", errors.New("auth cookie is required")
		}
		return token, nil
	}
}

// Проверяем формат "Bearer <token>"
func CheckBearerFormat(authHeader string) (string, error) {
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:], nil
	}
	return "", errors.New("invalid authorization header format")
}
