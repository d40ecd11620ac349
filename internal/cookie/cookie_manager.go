package cookie

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AliceHab/react-mesto-api-full-gha/internal/config"
)

// интерфейс для использования во внешних модулях
type CookieManagerInterface interface {
	SetCookie(c *gin.Context, opts CookieOptions) error
	GetCookie(c *gin.Context, name string) (string, error)
	DeleteCookie(c *gin.Context, name, path string)
}

// Manager - только базовая установка кук
type Manager struct {
	config *config.CookieManagerConfig
}

// конструктор для менеджера куки
func NewManager(config *config.CookieManagerConfig) *Manager {
	return &Manager{config: config}
}

// структура опций для работы с куки
type CookieOptions struct {
	Name     string // имя куки
	Value    string // значение
	MaxAge   int    // в секундах
	Path     string // путь
	HttpOnly *bool  // nil = использовать дефолт (true)
}

// SetCookie - установка куки согласно переданным параметрам
func (m *Manager) SetCookie(c *gin.Context, opts CookieOptions) error {
	// проверяем наличие имени
	if opts.Name == "" {
		return fmt.Errorf("cookie name must not be empty")
	}

	// Определяем параметры безопасности
	secure := m.config.Secure
	sameSite := m.parseSameSite()
	domain := m.getDomain()

	// Путь по умолчанию если не указан
	path := opts.Path
	if path == "" {
		path = m.config.DefaultPath
	}

	// HttpOnly по умолчанию true для безопасности
	httpOnly := true
	if opts.HttpOnly != nil {
		httpOnly = *opts.HttpOnly
	}

	c.SetSameSite(sameSite)

	c.SetCookie(
		opts.Name,
		opts.Value,
		opts.MaxAge,
		path,
		domain,
		secure,
		httpOnly,
	)

	return nil
}

// GetCookie - получить куку по имени
func (m *Manager) GetCookie(c *gin.Context, name string) (string, error) {
	value, err := c.Cookie(name)
	if err != nil {
		if err == http.ErrNoCookie {
			return "", fmt.Errorf("cookie %s not found: %w", name, err)
		}
		return "", fmt.Errorf("failed to get cookie %s: %w", name, err)
	}

	return value, nil
}

// DeleteCookie - очистить куку по имени и path
func (m *Manager) DeleteCookie(c *gin.Context, name, path string) {
	// Определяем путь для удаления
	deletePath := path
	if deletePath == "" {
		deletePath = m.config.DefaultPath
	}

	secure := m.config.Secure
	sameSite := m.parseSameSite()
	domain := m.getDomain()

	c.SetSameSite(sameSite)

	// Устанавливаем куку с истекшим сроком действия
	c.SetCookie(
		name,
		"", // пустое значение
		-1, // отрицательный MaxAge = удалить куку
		deletePath,
		domain,
		secure,
		true, // HttpOnly всегда true для удаления
	)
}

// Вспомогательные методы
func (m *Manager) getDomain() string {
	if m.config.ProjectMode == "production" && m.config.Domain != "" {
		return m.config.Domain
	}
	return "" // для localhost/development
}

func (m *Manager) parseSameSite() http.SameSite {
	switch m.config.SameSite {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	case "lax":
		fallthrough
	default:
		return http.SameSiteLaxMode
	}
}
