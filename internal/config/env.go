package config

import "os"

// Env источник переменных окружения
type Env interface {
	LookupEnv(key string) (string, bool)
}

// OSEnv переменные окружения процесса
type OSEnv struct{}

// LookupEnv implements Env
func (OSEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnv переменные окружения из map (тесты)
type MapEnv map[string]string

// LookupEnv implements Env
func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func lookup(env Env, key string) (string, bool) {
	if env == nil {
		return "", false
	}
	v, ok := env.LookupEnv(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
