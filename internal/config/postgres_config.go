// описание конфига для подключения к базе PostgresQL
package config

import (
	"time"
)

// структура конфига для базы
type PostgresDBConfig struct {
	DSN string `yaml:"dsn"`

	// настройки пула соединений
	MaxConns int32 `yaml:"max_conns"`
	MinConns int32 `yaml:"min_conns"`

	// настройки проверки здоровья соединений
	HealthCheckPeriod Duration `yaml:"health_check_period"`
	MaxConnLifetime   Duration `yaml:"max_conn_lifetime"`
	MaxConnIdleTime   Duration `yaml:"max_conn_idle_time"`

	// таймаут на установку соединения
	ConnectTimeout Duration `yaml:"connect_timeout"`
}

// функция для создания конфига базы по-дефолту
func UseDefaultPostgresDBConfig() *PostgresDBConfig {
	return &PostgresDBConfig{
		DSN:               "host=localhost port=5432 user=mesto password=mesto dbname=mestodb sslmode=disable",
		MaxConns:          10,
		MinConns:          2,
		HealthCheckPeriod: Duration(60 * time.Second),
		MaxConnLifetime:   Duration(time.Hour),
		MaxConnIdleTime:   Duration(30 * time.Minute),
		ConnectTimeout:    Duration(5 * time.Second),
	}
}
