package jwt_service

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadJWTConfig - специальная функция загрузки конфига для JWT (без дефолтов!)
func LoadJWTConfig(configPath string) (*JWTConfig, error) {
	if configPath == "" {
		return nil, fmt.Errorf("JWT config path is required")
	}

	// Проверяем существование файла
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("JWT config file not found: %w", err)
	}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JWT config: %w", err)
	}

	var config JWTConfig
	if err := yaml.Unmarshal(yamlFile, &config); err != nil {
		return nil, fmt.Errorf("failed to parse JWT config: %w", err)
	}

	if err := validateJWTConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid JWT config: %w", err)
	}
	return &config, nil
}

// validateJWTConfig - строгая валидация
func validateJWTConfig(cfg *JWTConfig) error {
	// 1. Ключ не должен быть пустым
	if cfg.SecretKey == "" {
		return fmt.Errorf("secret is required")
	}

	// 2. Минимальная длина ключа (рекомендация: 32+ символа)
	if len(cfg.SecretKey) < 32 {
		return fmt.Errorf("secret too short (min 32 chars)")
	}

	// 3. Валидация времени жизни
	if cfg.TokenExp.Std() <= 0 {
		return fmt.Errorf("token_expiry must be positive")
	}

	// 4. Максимальное значение: токен без отзыва не должен жить дольше 30 дней
	if cfg.TokenExp.Std() > 30*24*time.Hour {
		return fmt.Errorf("token_expiry too long (max 30 days)")
	}

	return nil
}
