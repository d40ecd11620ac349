package config

import "time"

// конфиг для менеджера куки
type CookieManagerConfig struct {
	Domain      string        `yaml:"domain"`       // Domain для production (пустая строка для localhost)
	ProjectMode string        `yaml:"project_mode"` // Режим работы: production, staging, development
	Secure      bool          `yaml:"secure"`       // Secure flag (true в production)
	SameSite    string        `yaml:"same_site"`    // SameSite режим: lax, strict, none
	DefaultPath string        `yaml:"default_path"` // Путь по умолчанию для кук
	TokenMaxAge Duration `yaml:"token_max_age"` // время жизни куки с токеном (7 дней)
}

// DefaultCookieConfig возвращает конфиг по умолчанию
func DefaultCookieConfig() *CookieManagerConfig {
	return &CookieManagerConfig{
		SameSite:    "strict",
		DefaultPath: "/",
		Secure:      false,
		TokenMaxAge: Duration(7 * 24 * time.Hour),
		// Domain и ProjectMode пустые - должны быть явно заданы
	}
}
