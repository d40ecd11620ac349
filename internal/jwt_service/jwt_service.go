package jwt_service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// интерфейс менеджера токенов для использования во внешних модулях
type JWTManager interface {
	GenerateToken(userID string) (string, error)
	ParseUserID(tokenString string) (string, error)
}

// создаём новый парсер, который учитывает метод шифрования и подтверждение срока действия
var parser = jwt.NewParser(
	jwt.WithValidMethods([]string{"HS256"}), // принимать только метод подписи HS256
	jwt.WithExpirationRequired(),            // проверка наличия срока действия токена
)

// NewJWTService создаёт рабочий сервис с конфигом
func NewJWTService(config *JWTConfig) *JWTService {
	return &JWTService{
		config: config,
	}
}

// метод структуры JWT для генерации токена с ID пользователя
func (j *JWTService) GenerateToken(userID string) (string, error) {
	claims := NewClaims(j.config.TokenExp.Std(), userID, j.config.Issuer)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(j.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// метод парсинга и проверки токена, возвращает ID пользователя.
// Ошибки подписи, подмены и истёкшего срока не различаются для вызывающего:
// гейт аутентификации сводит их все к одному ответу 401.
func (j *JWTService) ParseUserID(tokenString string) (string, error) {
	claims := &CustomClaims{}

	token, err := parser.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(j.config.SecretKey), nil
		})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	if claims.UserID == "" {
		return "", fmt.Errorf("token missing user_id claim")
	}

	return claims.UserID, nil
}

// вспомогательная функция для создания структуры информации для JWT
func NewClaims(tokenExp time.Duration, userID, issuer string) CustomClaims {
	newClaim := CustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenExp)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    issuer,
			ID:        uuid.New().String(),
		},
	}
	return newClaim
}
