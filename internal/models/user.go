package models

import "time"

// User пользователь эмулятора сервера записей
type User struct {
	CreatedAt    time.Time `json:"created_at"`
	ID           string    `json:"id"`            // UUID пользователя
	Login        string    `json:"login"`         // уникальный логин
	PasswordHash string    `json:"password_hash"` // argon2id хеш пароля
}

// StoredRecord запись объекта в хранилище эмулятора
type StoredRecord struct {
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	Fields     map[string]any `json:"fields"`
	Identifier string         `json:"identifier"`
	Key        string         `json:"key"`
	Number     int64          `json:"number"`
}
