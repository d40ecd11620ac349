package config

import "fmt"

// варианты транспорта токена: кука или заголовок Authorization
const (
	TokenTransportCookie = "cookie"
	TokenTransportBearer = "bearer"
)

// конфиг гейта аутентификации.
// Транспорт токена выбирается один раз на деплоймент, не на запрос.
type AuthConfig struct {
	TokenTransport string `yaml:"token_transport"` // "cookie" или "bearer"
	CookieName     string `yaml:"cookie_name"`     // имя куки с токеном
}

// функция для создания конфига аутентификации по-дефолту
func UseDefaultAuthConfig() *AuthConfig {
	return &AuthConfig{
		TokenTransport: TokenTransportCookie,
		CookieName:     "jwt",
	}
}

// метод валидации конфига аутентификации
func (c *AuthConfig) Validate() error {
	if c.TokenTransport != TokenTransportCookie && c.TokenTransport != TokenTransportBearer {
		return fmt.Errorf("token_transport must be %q or %q, got %q",
			TokenTransportCookie, TokenTransportBearer, c.TokenTransport)
	}
	if c.TokenTransport == TokenTransportCookie && c.CookieName == "" {
		return fmt.Errorf("cookie_name is required for cookie transport")
	}
	return nil
}
