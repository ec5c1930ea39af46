// Package config собирает настройки клиента и эмулятора сервера из
// значений по умолчанию, JSON файла, переменных окружения и флагов
// (в порядке возрастания приоритета).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrHelp возвращается, если запрошена справка (-h)
var ErrHelp = errors.New("help requested")

// splitList разбирает список через запятую, пустые элементы отбрасываются
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}
