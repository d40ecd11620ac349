package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// универсальная функция загрузки конфига из .yml файла (используем дженерики)
// fn - функция конструктор конфига по умолчанию
func LoadYAMLConfig[T any](configPath string, fn func() *T) (*T, error) {
	// если путь не задан или файла нет - используем дефолтный конфиг
	if configPath == "" {
		return fn(), nil
	}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fn(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	// начинаем с дефолтов, чтобы незаполненные поля не остались нулевыми
	config := fn()
	if err := yaml.Unmarshal(yamlFile, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}
