package config

import (
	"time"
)

// структура для конфига сервера
type ServerConfig struct {
	Host           string   `yaml:"host"`
	Port           string   `yaml:"port"`
	ReadTimeout    Duration `yaml:"read_timeout"`
	WriteTimeout   Duration `yaml:"write_timeout"`
	IdleTimeout    Duration `yaml:"idle_timeout"`
	MaxHeaderBytes int      `yaml:"max_header_bytes"`
	AllowedOrigins []string `yaml:"allowed_origins"` // источники для CORS
	RateLimit      Duration `yaml:"rate_limit"`      // минимальный интервал между запросами
}

// функция для создания конфига сервера по-дефолту
func UseDefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:           "localhost",
		Port:           "4000",
		ReadTimeout:    Duration(10 * time.Second),
		WriteTimeout:   Duration(10 * time.Second),
		IdleTimeout:    Duration(60 * time.Second),
		MaxHeaderBytes: 1 << 20,
		AllowedOrigins: []string{"http://localhost:3000"},
		RateLimit:      Duration(10 * time.Millisecond),
	}
}

// метод конфига сервера для формирования адреса
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}
